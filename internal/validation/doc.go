// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use and shared by every
// caller, so struct metadata is parsed once. Field names in error messages
// follow the json tag of the field (then the koanf tag), which keeps API
// error details in the same vocabulary as the request body.
//
// # Usage
//
//	var req FilterRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Validators
//
//   - hour: integer in [0, 23]
//   - hourend: integer in [1, 24], used for exclusive range ends
//
// Catalog files and the server configuration are validated with the same
// instance, so YAML typos surface with the same messages as bad requests.
package validation
