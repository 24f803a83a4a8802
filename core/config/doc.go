// Package config handles application configuration loading and validation.
//
// Configuration is read from environment variables, optionally seeded from
// a .env file. Nested keys map to underscore-separated variables
// (graph.tenant_id -> GRAPH_TENANT_ID) with defaults taken from struct
// tags. Validation failures are fatal: a run aborts before touching the
// source store or the directory.
package config
