package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile  string
	LogLevel string

	// Generation
	Template  string
	XLSXFile  string
	Column    string
	NamesFile string
	Phonetic  bool
	Output    string

	// Inspect
	InspectTemplate string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Template: "eg1",
		Phonetic: true,
		Output:   "output.pptx",
	}
}
