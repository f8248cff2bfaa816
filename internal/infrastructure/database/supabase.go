package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient wraps the Supabase client
type SupabaseClient struct {
	Client *supabase.Client
	url    string
}

// NewSupabaseClient creates a new Supabase client
func NewSupabaseClient(supabaseURL, anonKey string) (*SupabaseClient, error) {
	if supabaseURL == "" {
		return nil, errors.New("SUPABASE_URL is not set")
	}
	if anonKey == "" {
		return nil, errors.New("SUPABASE_ANON_KEY is not set")
	}

	client, err := supabase.NewClient(supabaseURL, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	return &SupabaseClient{
		Client: client,
		url:    supabaseURL,
	}, nil
}

// GetClient returns the underlying Supabase client
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// URL returns the project URL
func (sc *SupabaseClient) URL() string {
	return sc.url
}

// HealthCheck runs a one-row query against the umkm table
func (sc *SupabaseClient) HealthCheck(ctx context.Context) error {
	if sc.Client == nil {
		return errors.New("Supabase client is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := sc.Client.From("umkm").Select("id", "", false).Limit(1, "").Execute()
	if err != nil {
		return fmt.Errorf("Supabase health check failed: %w", err)
	}
	return nil
}
