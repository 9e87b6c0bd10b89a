package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"fin-circle.backend/internal/domain/entities"
	"fin-circle.backend/internal/profilestore"
)

// datagen dumps the generated profile directory as JSON, so the frontend
// team can inspect exactly what a given seed produces.
func main() {
	count := flag.Int("count", 50, "number of profiles to generate")
	seed := flag.Int64("seed", 1, "generator seed")
	out := flag.String("out", "", "output file (defaults to stdout)")
	public := flag.Bool("public", false, "strip sensitive fields from the dump")
	flag.Parse()

	gen := profilestore.NewGenerator(profilestore.GeneratorConfig{
		Count: *count,
		Seed:  *seed,
	})
	profiles := gen.Generate()

	var payload any = profiles
	if !*public {
		// the sensitive subset is excluded from JSON on the entity, so a
		// full dump carries it beside each record
		type fullRecord struct {
			entities.Profile
			Sensitive entities.SensitiveProfile `json:"sensitive"`
		}
		full := make([]fullRecord, len(profiles))
		for i, p := range profiles {
			full[i] = fullRecord{Profile: p.PublicView(), Sensitive: p.Sensitive}
		}
		payload = full
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("marshal profiles: %v", err)
	}

	if *out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %d profiles to %s", len(profiles), *out)
}
