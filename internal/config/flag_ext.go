package config

// strFlag remembers whether the flag was given on the command line, so that
// lower-priority sources only fill values the user left alone.
type strFlag struct {
	v   string
	set bool
}

func (f *strFlag) String() string     { return f.v }
func (f *strFlag) Set(s string) error { f.v, f.set = s, true; return nil }
