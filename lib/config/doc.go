// Copyright 2026 The Ticketdesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for ticketdesk.
//
// Configuration is loaded from a single YAML file specified by:
//   - the TICKETDESK_CONFIG environment variable, or
//   - the --config flag passed to the command
//
// When neither is set, built-in defaults apply: the ticket database
// lives under the user's config directory and exports go into the
// working directory. There is no discovery chain beyond that; the one
// file named is the single source of truth, and environment variables
// never override its values. Paths in the file may use ${VAR} and
// ${VAR:-default} expansion for portability.
package config
