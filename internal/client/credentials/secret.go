package credentials

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"healthchat/internal/common"
	"healthchat/internal/cryptox"
)

// installationSecret is the on-disk format of the per-installation sealing
// secret. It never leaves the local machine.
type installationSecret struct {
	ID     string `json:"id"`
	Secret []byte `json:"secret"`
	Salt   []byte `json:"salt"`
}

// LoadOrCreateSealingKey reads the installation secret at path, creating it
// with fresh random material on first run, and derives the AES key used by
// the SealedBackend. The file is written with 0600 permissions.
func LoadOrCreateSealingKey(path string) ([]byte, error) {
	var s installationSecret

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse installation secret: %w", err)
		}
	case os.IsNotExist(err):
		s = installationSecret{
			ID:     uuid.NewString(),
			Secret: common.GenerateRandByteArray(32),
			Salt:   common.GenerateRandByteArray(16),
		}
		data, err := json.Marshal(&s)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write installation secret: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to read installation secret: %w", err)
	}

	return cryptox.DeriveKey(s.Secret, s.Salt), nil
}
