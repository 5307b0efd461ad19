package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Checks that every key of a dumped config is documented in the example config.
// Run from the repository root after `lnnode -dump_config=config/dumped_config.yaml`.
func main() {
	exampleConfig, err := readYAML("config/example_config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	dumpedConfig, err := readYAML("config/dumped_config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	missing := missingKeys("", dumpedConfig, exampleConfig)
	if len(missing) > 0 {
		log.Fatalf("keys missing in config/example_config.yaml: %s", strings.Join(missing, ", "))
	}
}

func readYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := make(map[string]any)
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}

// missingKeys returns the dotted paths of all keys in actual that expected does not have.
// Keys are compared case-insensitively since viper lowercases them on dump.
func missingKeys(prefix string, actual map[string]any, expected map[string]any) []string {
	expected = lowercaseKeys(expected)

	var missing []string
	for key, value := range actual {
		path := strings.ToLower(key)
		if prefix != "" {
			path = prefix + "." + path
		}

		expectedValue, found := expected[strings.ToLower(key)]
		if !found {
			missing = append(missing, path)
			continue
		}

		nested, isMap := value.(map[string]any)
		expectedNested, expectedIsMap := expectedValue.(map[string]any)
		if isMap && expectedIsMap {
			missing = append(missing, missingKeys(path, nested, expectedNested)...)
		}
	}

	sort.Strings(missing)
	return missing
}

func lowercaseKeys(configMap map[string]any) map[string]any {
	lowercase := make(map[string]any, len(configMap))
	for k, v := range configMap {
		lowercase[strings.ToLower(k)] = v
	}
	return lowercase
}
