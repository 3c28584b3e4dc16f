package configuration

// Ledger holds the reserve and directory-page knobs the delta-set engine
// needs from outside itself.
type Ledger struct {
	// ReserveBase is the native-currency amount an account must hold
	// before owning any directory-tracked entry.
	ReserveBase int64

	// ReserveIncrement is the additional native-currency amount required
	// per owned entry.
	ReserveIncrement int64

	// DirNodeMax is carried in the configuration but not read by the
	// directory engine, which always caps pages at sle.DirNodeMax (32).
	DirNodeMax int
}

// NewLedger creates the default Ledger configuration, matching mainnet
// rippled's reserve schedule.
func NewLedger() Ledger {
	return Ledger{
		ReserveBase: 20_000_000,
		ReserveIncrement: 5_000_000,
	}
}
