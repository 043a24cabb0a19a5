package config

import "testing"

func TestLoadPostgresConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		wantDSN string
	}{
		{
			name: "defaults for port and sslmode",
			env: map[string]string{
				"POSTGRES_USER":     "cart",
				"POSTGRES_PASSWORD": "secret",
				"POSTGRES_DB":       "store",
				"POSTGRES_HOSTNAME": "db",
			},
			wantDSN: "host=db port=5432 user=cart password=secret dbname=store sslmode=disable",
		},
		{
			name: "explicit port and sslmode",
			env: map[string]string{
				"POSTGRES_USER":     "cart",
				"POSTGRES_PASSWORD": "secret",
				"POSTGRES_DB":       "store",
				"POSTGRES_HOSTNAME": "db",
				"POSTGRES_PORT":     "6543",
				"POSTGRES_SSLMODE":  "require",
			},
			wantDSN: "host=db port=6543 user=cart password=secret dbname=store sslmode=require",
		},
		{
			name:    "missing user",
			env:     map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "store", "POSTGRES_HOSTNAME": "db"},
			wantErr: true,
		},
		{
			name:    "missing host",
			env:     map[string]string{"POSTGRES_USER": "cart", "POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "store"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadPostgresConfig(envFrom(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadPostgresConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := cfg.ConnectionString(); got != tt.wantDSN {
				t.Errorf("ConnectionString() = %q, want %q", got, tt.wantDSN)
			}
		})
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CART_STORE", "")
	t.Setenv("CART_TEMPLATE", "")

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Store != StoreMemory || cfg.TemplatePath != "templates/home.html" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	t.Setenv("CART_STORE", "redis")
	if _, err := LoadServerConfig(); err == nil {
		t.Error("expected error for unknown store")
	}
}
