package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Statics           string `usage:"statics directory, overrides the embedded index.html"`
	Capacity          int    `usage:"initial number of user slots"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	EnableAccessLog   bool   `usage:"log every request to stdout"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		HttpAddr:          ":8086",
		Statics:           "",
		Capacity:          1024,
		EnableCompression: false,
		EnableAccessLog:   true,
		Version:           false,
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
