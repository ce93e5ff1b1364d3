package store

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	saveContact = `INSERT INTO contacts (
			id,
			kind,
			first_name,
			last_name,
			email,
			organization,
			phone,
			service,
			preferred_date,
			message,
			ip_address,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	listContacts = `SELECT id, kind, first_name, last_name, email, organization, phone,
			service, preferred_date, message, ip_address, created_at
		FROM contacts
		ORDER BY created_at DESC;`
)

// patientColumns are selected by every patient query, in scan order.
var patientColumns = []string{
	"id",
	"first_name",
	"last_name",
	"to_char(date_of_birth, 'YYYY-MM-DD')",
	"gender",
	"email",
	"phone",
	"address",
	"insurance_provider",
	"policy_number",
	"created_at",
	"updated_at",
}
