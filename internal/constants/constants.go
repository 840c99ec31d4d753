package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.snip/`

	DefaultExtension = `.txt`
	DefaultEditor    = `nano`

	TrashDir = `.trash`

	// CreatePrefix switches a query into snippet-creation mode.
	CreatePrefix = `+`
)
