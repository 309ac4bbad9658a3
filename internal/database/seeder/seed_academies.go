package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"breneo/internal/database"

	"github.com/google/uuid"
)

// Academy payloads are stored in the shapes upstream sources send, aliases
// and all; they are adapted on read.
var demoAcademies = []map[string]any{
	{
		"academy_name":  "Tbilisi Code School",
		"about":         "Evening bootcamps for backend and frontend development.",
		"website_url":   "https://code.example.ge",
		"contact_email": "Hello@Code.Example.GE",
		"city":          "Tbilisi",
		"is_verified":   true,
	},
	{
		"first_name":    "Nino",
		"last_name":     "Beridze",
		"bio":           "Independent UX mentor.",
		"profile_image": "https://cdn.example.ge/nino.png",
		"phone_number":  "+995 555 000 000",
		"verified":      "false",
	},
}

type AcademiesSeeder struct{}

func (AcademiesSeeder) Name() string { return "academies" }

func (AcademiesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := RequireColumns(ctx, db, "academies", "id", "payload"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(q database.Querier) error {
		for i, raw := range demoAcademies {
			id := uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("academy:%d", i)))
			b, err := json.Marshal(raw)
			if err != nil {
				return err
			}
			if _, err := q.Exec(ctx,
				`INSERT INTO academies (id, payload) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
				id, b,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
