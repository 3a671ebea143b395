package datasource

// Expected record counts per data type. The demo table matches exactly what
// cmd/seed writes; the database table reflects the reference fixture the
// integration environment is restored from.

var demoExpectedCounts = map[string]int64{
	"marinas":     3,
	"owners":      25,
	"customers":   25, // alias kept for the UI widget
	"boats":       30,
	"berths":      60,
	"contracts":   20,
	"bookings":    15,
	"invoices":    40,
	"payments":    35,
	"work_orders": 12,
}

var databaseExpectedCounts = map[string]int64{
	"marinas":     3,
	"owners":      25,
	"customers":   25,
	"boats":       30,
	"berths":      60,
	"contracts":   20,
	"bookings":    15,
	"invoices":    40,
	"payments":    35,
	"work_orders": 12,
}

// ExpectedCount returns the expected count for a data type in the given
// mode; ok is false for unknown types.
func ExpectedCount(mode Mode, dataType string) (int64, bool) {
	table := databaseExpectedCounts
	if mode == ModeDemo {
		table = demoExpectedCounts
	}
	n, ok := table[dataType]
	return n, ok
}

// DataTypes lists the validatable data types in stable order.
func DataTypes() []string {
	return []string{
		"marinas", "owners", "boats", "berths", "contracts",
		"bookings", "invoices", "payments", "work_orders",
	}
}
