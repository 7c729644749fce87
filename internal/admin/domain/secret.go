package domain

import "time"

// SecretTypeSharedSecret is the only secret type whose value is hash-processed
// before persistence. Other types are stored verbatim.
const SecretTypeSharedSecret = "SharedSecret"

// HashType selects the digest applied to shared secrets before they are
// written to the store.
type HashType int

const (
	HashTypeNone HashType = iota
	HashTypeSha256
	HashTypeSha512
)

func (h HashType) String() string {
	switch h {
	case HashTypeSha256:
		return "sha256"
	case HashTypeSha512:
		return "sha512"
	default:
		return "none"
	}
}

// ClientSecret belongs to exactly one client and lives independently of the
// client's replace cycle. HashType is consumed when the secret is added; the
// stored Value is always the already-processed form and is never re-hashed
// on read.
type ClientSecret struct {
	ID          int64
	ClientID    int64
	Type        string
	HashType    HashType
	Value       string
	Description string
	Expiration  *time.Time
	Created     time.Time
}
