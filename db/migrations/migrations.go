// Package migrations holds the dashboard schema: campaign_rows for the
// table and dashboard_snapshots for the header data.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to. Bump it
// with every new NNNNNN_name.up.sql file.
const Version = 1
