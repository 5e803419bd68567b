//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import "context"

type DBRepo interface {
	UpdateUserName(ctx context.Context, userUUID, name string) error
	UpdateUserAvatar(ctx context.Context, userUUID, avatarURL string) error
}
