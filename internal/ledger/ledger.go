// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger keeps data pointers in an append-only, hash-chained
// LevelDB store.
//
// Every appended pointer becomes a block carrying the hash of the block
// before it, so any rewrite of history is caught by Verify. Two secondary
// indexes map pointer ids and owners to block heights.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	keyHeight    = "meta\x00height"
	prefixBlock  = "block\x00"
	prefixPtr    = "ptr\x00"
	prefixOwner  = "owner\x00"
	statusOK     = "ok"
	statusBroken = "broken"
)

// GenesisHash is the previous hash of the first block.
var GenesisHash = strings.Repeat("0", 64)

// Block is one ledger entry.
type Block struct {
	Height    uint64             `json:"height"`
	PrevHash  string             `json:"prevHash"`
	Timestamp time.Time          `json:"timestamp"`
	Pointer   models.DataPointer `json:"pointer"`
	Hash      string             `json:"hash"`
}

type blockHeader struct {
	Height    uint64             `json:"height"`
	PrevHash  string             `json:"prevHash"`
	Timestamp string             `json:"timestamp"`
	Pointer   models.DataPointer `json:"pointer"`
}

// computeHash returns the hex sha256 of the block header.
func (b Block) computeHash() (string, error) {
	data, err := json.Marshal(blockHeader{
		Height:    b.Height,
		PrevHash:  b.PrevHash,
		Timestamp: b.Timestamp.UTC().Format(time.RFC3339Nano),
		Pointer:   b.Pointer,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Ledger is a LevelDB backed pointer ledger. Appends are serialized.
type Ledger struct {
	db     *leveldb.DB
	mu     sync.Mutex
	now    func() time.Time
	logger *logger.Logger
}

// Open opens the ledger stored under cfg.Path. An empty path keeps the
// ledger in memory.
func Open(cfg config.Ledger, log *logger.Logger) (*Ledger, error) {
	var (
		db  *leveldb.DB
		err error
	)
	if cfg.Path == "" {
		log.Warn().Str("func", "ledger.Open").Msg("no ledger path configured, keeping ledger in memory")
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(cfg.Path, nil)
	}
	if err != nil {
		log.Err(err).Str("func", "ledger.Open").Msg("error opening ledger")
		return nil, fmt.Errorf("%w: %w", ErrOpeningLedger, err)
	}

	return newLedger(db, log), nil
}

func newLedger(db *leveldb.DB, log *logger.Logger) *Ledger {
	return &Ledger{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Append stores pointer as a new block. CreatedAt is stamped by the ledger.
// Pointer ids are unique: a second append of the same id yields
// ErrDuplicatePointer.
func (l *Ledger) Append(ctx context.Context, pointer models.DataPointer) (models.DataPointer, error) {
	log := logger.FromContext(ctx)

	if pointer.ID == "" || pointer.Owner == "" || pointer.StorageProvider == "" {
		return models.DataPointer{}, ErrInvalidPointer
	}
	// NUL separates the owner from the id in the owner index.
	if strings.ContainsRune(pointer.Owner, 0) {
		return models.DataPointer{}, ErrInvalidOwner
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.db.Get(ptrKey(pointer.ID), nil); err == nil {
		return models.DataPointer{}, ErrDuplicatePointer
	} else if !errors.Is(err, leveldb.ErrNotFound) {
		log.Err(err).Str("func", "*Ledger.Append").Msg("error reading pointer index")
		return models.DataPointer{}, fmt.Errorf("%w: %w", ErrReadingLedger, err)
	}

	height, head, err := l.head()
	if err != nil {
		log.Err(err).Str("func", "*Ledger.Append").Msg("error reading ledger head")
		return models.DataPointer{}, err
	}

	now := l.now()
	pointer.CreatedAt = now
	block := Block{
		Height:    height + 1,
		PrevHash:  head,
		Timestamp: now,
		Pointer:   pointer,
	}
	if block.Hash, err = block.computeHash(); err != nil {
		return models.DataPointer{}, fmt.Errorf("%w: %w", ErrWritingLedger, err)
	}

	data, err := json.Marshal(block)
	if err != nil {
		return models.DataPointer{}, fmt.Errorf("%w: %w", ErrWritingLedger, err)
	}

	heightBytes := encodeHeight(block.Height)
	batch := new(leveldb.Batch)
	batch.Put(blockKey(block.Height), data)
	batch.Put(ptrKey(pointer.ID), heightBytes)
	batch.Put(ownerKey(pointer.Owner, pointer.ID), heightBytes)
	batch.Put([]byte(keyHeight), heightBytes)
	if err = l.db.Write(batch, nil); err != nil {
		log.Err(err).Str("func", "*Ledger.Append").Msg("error writing block")
		return models.DataPointer{}, fmt.Errorf("%w: %w", ErrWritingLedger, err)
	}

	log.Debug().Str("func", "*Ledger.Append").
		Uint64("height", block.Height).
		Str("pointer_id", pointer.ID).
		Msg("pointer appended")

	return pointer, nil
}

// Get returns the pointer with id or ErrPointerNotFound.
func (l *Ledger) Get(ctx context.Context, id string) (models.DataPointer, error) {
	heightBytes, err := l.db.Get(ptrKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return models.DataPointer{}, ErrPointerNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Ledger.Get").Msg("error reading pointer index")
		return models.DataPointer{}, fmt.Errorf("%w: %w", ErrReadingLedger, err)
	}

	block, err := l.block(decodeHeight(heightBytes))
	if err != nil {
		return models.DataPointer{}, err
	}
	return block.Pointer, nil
}

// ListByOwner returns the pointers of owner in append order.
func (l *Ledger) ListByOwner(ctx context.Context, owner string) ([]models.DataPointer, error) {
	iter := l.db.NewIterator(util.BytesPrefix(ownerPrefix(owner)), nil)
	defer iter.Release()

	var heights []uint64
	for iter.Next() {
		heights = append(heights, decodeHeight(iter.Value()))
	}
	if err := iter.Error(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Ledger.ListByOwner").Msg("error iterating owner index")
		return nil, fmt.Errorf("%w: %w", ErrReadingLedger, err)
	}

	slices.Sort(heights)

	pointers := make([]models.DataPointer, 0, len(heights))
	for _, h := range heights {
		block, err := l.block(h)
		if err != nil {
			return nil, err
		}
		pointers = append(pointers, block.Pointer)
	}
	return pointers, nil
}

// Status reports height, head hash and the result of a full verification.
func (l *Ledger) Status(ctx context.Context) (models.LedgerStatus, error) {
	height, head, err := l.head()
	if err != nil {
		return models.LedgerStatus{}, err
	}

	status := models.LedgerStatus{Status: statusOK, Height: height, HeadHash: head, Verified: true}
	if err = l.Verify(ctx); err != nil {
		if !errors.Is(err, ErrChainBroken) {
			return models.LedgerStatus{}, err
		}
		status.Status = statusBroken
		status.Verified = false
	}
	return status, nil
}

// Verify walks the chain from the first block and checks every link and
// hash. A mismatch yields ErrChainBroken naming the offending height.
func (l *Ledger) Verify(ctx context.Context) error {
	height, _, err := l.head()
	if err != nil {
		return err
	}

	prev := GenesisHash
	for h := uint64(1); h <= height; h++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		block, err := l.block(h)
		if err != nil {
			if errors.Is(err, ErrPointerNotFound) {
				return fmt.Errorf("%w: block %d missing", ErrChainBroken, h)
			}
			return err
		}
		if block.PrevHash != prev {
			return fmt.Errorf("%w: block %d does not link to its predecessor", ErrChainBroken, h)
		}
		sum, err := block.computeHash()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadingLedger, err)
		}
		if sum != block.Hash {
			return fmt.Errorf("%w: block %d hash mismatch", ErrChainBroken, h)
		}
		prev = block.Hash
	}
	return nil
}

// head returns the current height and the hash of the last block.
func (l *Ledger) head() (uint64, string, error) {
	heightBytes, err := l.db.Get([]byte(keyHeight), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, GenesisHash, nil
	}
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrReadingLedger, err)
	}

	height := decodeHeight(heightBytes)
	block, err := l.block(height)
	if err != nil {
		return 0, "", err
	}
	return height, block.Hash, nil
}

func (l *Ledger) block(height uint64) (Block, error) {
	data, err := l.db.Get(blockKey(height), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return Block{}, ErrPointerNotFound
	}
	if err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrReadingLedger, err)
	}

	var block Block
	if err = json.Unmarshal(data, &block); err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrReadingLedger, err)
	}
	return block, nil
}

func blockKey(height uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefixBlock, height))
}

func ptrKey(id string) []byte {
	return []byte(prefixPtr + id)
}

func ownerPrefix(owner string) []byte {
	return []byte(prefixOwner + owner + "\x00")
}

func ownerKey(owner, id string) []byte {
	return append(ownerPrefix(owner), id...)
}

func encodeHeight(h uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return b
}

func decodeHeight(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}
