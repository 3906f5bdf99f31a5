package config

type HeroDef struct {
	Name      string         `yaml:"name"`
	HP        int            `yaml:"hp"`
	Attack    int            `yaml:"attack"`
	Defense   int            `yaml:"defense"`
	Inventory map[string]int `yaml:"inventory"`
}

// MonsterDef describes the roster: Count identical monsters named
// NamePrefix_0 .. NamePrefix_{Count-1}.
type MonsterDef struct {
	Count      int    `yaml:"count"`
	NamePrefix string `yaml:"name_prefix"`
	HP         int    `yaml:"hp"`
	Attack     int    `yaml:"attack"`
	Defense    int    `yaml:"defense"`
}
