package cli

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/carteira/internal/common"
)

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "-Enter username")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	defer common.WipeByteArray(password)

	resp, err := a.postJSON(ctx, "/auth/", credentialsPayload{Username: userName, Password: string(password)})
	if err != nil {
		log.Printf("Server unavailable: %v", err)
		return err
	}
	defer resp.Body.Close()

	text := readServerText(resp)
	if resp.StatusCode != http.StatusCreated {
		log.Printf("Registration unsuccessfull: %s", text)
		return nil
	}

	log.Printf("Registration successfull: %s", text)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "-Enter username")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	defer common.WipeByteArray(password)

	form := url.Values{"username": {userName}, "password": {string(password)}}
	resp, err := a.postForm(ctx, "/auth/token", form)
	if err != nil {
		log.Printf("Server unavailable: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Login unsuccessfull: %s", readServerText(resp))
		return nil
	}

	// The session cookie lands in the jar; every later call carries it.
	a.userName = userName
	log.Printf("Login successfull")
	return nil
}
