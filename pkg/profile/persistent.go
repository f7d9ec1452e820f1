package profile

// LaunchPersistentContextArgs holds the arguments for
// BrowserType.LaunchPersistentContext: launch parameters, the context
// parameters applied to the default context, and the on-disk user data
// directory backing the persistent profile.
type LaunchPersistentContextArgs struct {
	Launch  LaunchArgs  `yaml:"launch" json:"launch"`
	Context ContextArgs `yaml:"context" json:"context"`

	// UserDataDir is the directory holding the persistent browser profile.
	// Empty means an incognito temp dir managed by the launcher.
	UserDataDir string `yaml:"user_data_dir,omitempty" json:"user_data_dir,omitempty"`
}

// Validate checks both embedded records.
func (a *LaunchPersistentContextArgs) Validate() error {
	if err := a.Launch.Validate(); err != nil {
		return err
	}
	return a.Context.Validate()
}
