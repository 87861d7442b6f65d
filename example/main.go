package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/clientconf"
)

func main() {
	// Values as different sources would supply them: the application default
	// uses the simple name, the environment overrides the legacy spelling.
	defaults := clientconf.NewMapSource("defaults", clientconf.OrdinalDefault, map[string]string{
		"quarkus.rest-client.FooClient.url":            "http://localhost:8080",
		"quarkus.rest-client.FooClient.connectTimeout": "5s",
	})
	overrides := clientconf.NewMapSource("overrides", clientconf.OrdinalEnv, map[string]string{
		"com.acme.FooClient/mp-rest/connect-timeout": "500ms",
	})

	resolver, err := clientconf.NewBuilder().
		WithClient("com.acme.FooClient", "").
		WithSources(defaults, overrides).
		Build()
	if err != nil {
		log.Fatal("failed to build resolver: ", err)
	}

	// Any spelling resolves; the higher-ordinal override wins.
	v, _ := resolver.Resolve(`quarkus.rest-client."com.acme.FooClient".connectTimeout`)
	fmt.Printf("connectTimeout = %s (from %s)\n", v.Value, v.Source)

	var cfg clientconf.ClientConfig
	if err := resolver.ScanClient("com.acme.FooClient", &cfg); err != nil {
		log.Fatal("failed to scan client config: ", err)
	}
	fmt.Printf("url = %s, connect timeout = %s\n", cfg.URL, cfg.ConnectTimeout)
}
