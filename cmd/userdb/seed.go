package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/authbase-lab/userdb/entity"
	"github.com/authbase-lab/userdb/pkg/crypto"
)

func (s *srv) startSeed(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()

	hashed, err := crypto.HashPassword(cctx.String("password"))
	if err != nil {
		return err
	}

	user := &entity.User{
		Email:          cctx.String("email"),
		HashedPassword: hashed,
	}
	if err := s.userRepo.Create(cctx.Context, user); err != nil {
		return err
	}

	if err := s.userRepo.Update(cctx.Context, user, map[string]any{
		"is_superuser": true,
		"is_verified":  true,
	}); err != nil {
		return err
	}

	value, err := crypto.GenerateToken()
	if err != nil {
		return err
	}

	token := &entity.AccessToken{Token: value, UserID: user.ID}
	if err := s.accessTokenRepo.Create(cctx.Context, token); err != nil {
		return err
	}

	s.logger.Infof("created superuser %s", user.Email)
	fmt.Println(token.Token)

	return nil
}
