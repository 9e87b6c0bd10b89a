package redis

import (
	"context"
	"time"
)

// CodeStore keeps hashed SMS login codes with a TTL. Only the bcrypt hash
// of a code ever reaches Redis.
type CodeStore struct{}

var (
	setCodeValue = Set
	getCodeValue = Get
	delCodeValue = Del
)

// NewCodeStore creates a new code store
func NewCodeStore() *CodeStore {
	return &CodeStore{}
}

// Save stores a hashed code for a phone number with the given TTL,
// replacing any previous code for that phone.
func (s *CodeStore) Save(ctx context.Context, phone, codeHash string, ttl time.Duration) error {
	return setCodeValue(ctx, "sms:code:"+phone, codeHash, ttl)
}

// Get returns the stored hash for a phone, or found=false when no code is
// pending (missing or expired).
func (s *CodeStore) Get(ctx context.Context, phone string) (hash string, found bool, err error) {
	v, err := getCodeValue(ctx, "sms:code:"+phone)
	if err != nil {
		if IsNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// Delete invalidates a pending code after a successful or failed login
func (s *CodeStore) Delete(ctx context.Context, phone string) error {
	return delCodeValue(ctx, "sms:code:"+phone)
}
