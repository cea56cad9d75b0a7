// Command schema writes the JSON schema of hackynews config, the result is embedded into pkg/config
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/hackynews/hackynews/pkg/config"
)

type options struct {
	Out    string `short:"o" long:"out" default:"pkg/config/schema.json" description:"output file, - for stdout"`
	Indent string `long:"indent" default:"  " description:"indentation"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := write(opts); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func write(opts options) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	data, err := json.MarshalIndent(schema, "", opts.Indent)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if opts.Out == "-" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(opts.Out, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write schema file: %w", err)
	}
	log.Printf("[INFO] config schema written to %s", opts.Out)
	return nil
}
