// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package calculator implements the HEFIN calculators as pure functions:
// health financing optimization, HSA growth projection, insurance plan cost
// comparison and retirement savings projection.
//
// Inputs are expected to be validated by the validators package. Rates are
// given in percent. Money results are rounded to cents.
package calculator
