// Package schema idempotently provisions the reporting objects the stats
// generator depends on: the PacketsView derived view with its indexes and the
// ProtocolTypes lookup table.
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Object names shared by every dialect.
const (
	PacketsViewName       = "PacketsView"
	PacketsViewIndexName  = "PacketsViewIndex"
	CollectorIndexName    = "IX_NonClusteredIndex_Collector"
	ProtocolTypesName     = "ProtocolTypes"
	PacketIndicesName     = "PacketIndices"
	PcapMetaDataName      = "PcapMetaData"
	protocolColumnsHeader = "(protocolTypeId, protocolType)"
)

// Kind is the catalog kind an existence probe is scoped to.
type Kind string

const (
	KindTable Kind = "table"
	KindView  Kind = "view"
)

// Object is one provisioned database object. Probe must return a single
// integer: 1 when the object exists, 0 otherwise. Create runs in order.
type Object struct {
	Name    string
	Kind    Kind
	Probe   string
	Create  []string
	Created string
}

// Dialect holds the static statement text for one database engine.
type Dialect struct {
	Name          string
	PacketsView   Object
	ProtocolTypes Object
}

// DialectFor returns the dialect matching a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlserver", "mssql":
		return SQLServer, nil
	case "postgres", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("no schema dialect for driver %q", driver)
	}
}

// seedInsert renders one multi-row INSERT covering every protocol number.
// literalPrefix is prepended to string literals (N for SQL Server).
func seedInsert(table, literalPrefix string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" ")
	b.WriteString(protocolColumnsHeader)
	b.WriteString(" VALUES\n")
	for i, p := range Protocols {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("(")
		b.WriteString(strconv.Itoa(int(p.ID)))
		b.WriteString(", ")
		b.WriteString(literalPrefix)
		b.WriteString("'")
		b.WriteString(strings.ReplaceAll(p.Name, "'", "''"))
		b.WriteString("')")
	}
	b.WriteString(";")
	return b.String()
}

func createdMessage(kind Kind, name string) string {
	if kind == KindTable {
		return "Created " + name + " lookup table"
	}
	return "Created " + name
}
