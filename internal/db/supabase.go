package db

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
)

// NewSupabaseClient connects with the service key; row level security is
// bypassed and access control stays in this service.
func NewSupabaseClient(cfg *config.Config) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return client, nil
}
