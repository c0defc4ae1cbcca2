// Package seed holds the authored Kathmandu Valley dataset. Everything
// here is keyed by slug and safe to load any number of times.
package seed

func str(s string) *string   { return &s }
func num(n int) *int         { return &n }
func f64(v float64) *float64 { return &v }
func boolp(v bool) *bool     { return &v }
