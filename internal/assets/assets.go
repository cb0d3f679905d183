package assets

// PyPIStyleName names the style guaranteed to resolve even without a config file.
const PyPIStyleName = "pypi"

var defaultLoader = NewEmbeddedLoader()

// PyPIStyle returns the built-in "pypi" fragment.
func PyPIStyle() string {
	s, err := defaultLoader.LoadStyle(PyPIStyleName)
	if err != nil {
		// styles/pypi.html is embedded; a miss is a packaging bug.
		panic("assets: built-in pypi style missing: " + err.Error())
	}
	return s
}

// ConfigTemplate returns the default configuration file contents.
func ConfigTemplate() []byte {
	return defaultLoader.ConfigTemplate()
}
