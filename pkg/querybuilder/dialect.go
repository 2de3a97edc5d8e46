package querybuilder

// ForDialect returns the options for a gorm dialector name ("mysql", "sqlite",
// "postgres"): identifier quoting plus a case-sensitive substring operator.
// SQLite relies on the connection being opened with case_sensitive_like.
func ForDialect(name string) []Option {
	switch name {
	case "mysql":
		return []Option{WithLikeOperator("LIKE BINARY"), WithIdentifierQuote("`")}
	case "sqlite", "postgres":
		return []Option{WithIdentifierQuote(`"`)}
	default:
		return nil
	}
}
