package config

// Lezerfile represents the structure of the lezer.yaml configuration file.
type Lezerfile struct {
	Scope      string        `yaml:"scope"`
	Repository string        `yaml:"repository"`
	Packages   []*PackageDTO `yaml:"packages"`
}

// PackageDTO represents a package declaration in the configuration.
type PackageDTO struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Entry string `yaml:"entry"`
	ESM   *bool  `yaml:"esm"`
	Repo  string `yaml:"repo"`
}
