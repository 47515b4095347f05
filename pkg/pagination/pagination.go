package pagination

// DefaultLimit is the page size when a limit is not provided.
const DefaultLimit = 100

// Params holds offset pagination inputs from controllers or services.
// No upper bound is enforced on Limit.
type Params struct {
	Skip  int
	Limit int
}

// Normalize replaces missing or negative inputs with the defaults.
func (p Params) Normalize() Params {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}
