package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
)

// Documents fetches and prints every document linked to the account.
func (a *App) Documents(ctx context.Context) error {
	resp, err := a.get(ctx, "/documents/")
	if err != nil {
		log.Printf("Server unavailable: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("error: %s", readServerText(resp))
		return nil
	}

	text, err := prettyJSON(resp.Body)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(text)
	return nil
}

// Document fetches one document kind (cpf, rg, cnh, vaccination_card).
func (a *App) Document(ctx context.Context, kind string) error {
	resp, err := a.get(ctx, "/documents/"+kind)
	if err != nil {
		log.Printf("Server unavailable: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("error: %s", readServerText(resp))
		return nil
	}

	text, err := prettyJSON(resp.Body)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(text)
	return nil
}

// Balance prints the current transit balance.
func (a *App) Balance(ctx context.Context) error {
	resp, err := a.get(ctx, "/transport/balance")
	if err != nil {
		log.Printf("Server unavailable: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("error: %s", readServerText(resp))
		return nil
	}

	log.Printf("%s", readServerText(resp))
	return nil
}

type topUpPayload struct {
	Amount string `json:"amount"`
}

// TopUp prompts for an amount and credits the transit account.
func (a *App) TopUp(ctx context.Context) error {
	amount, err := GetSimpleText(a.reader, "-Enter amount (e.g. 10.50)")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	resp, err := a.postJSON(ctx, "/transport/add_balance", topUpPayload{Amount: amount})
	if err != nil {
		log.Printf("Server unavailable: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Printf("error: %s", readServerText(resp))
		return nil
	}

	log.Printf("%s", readServerText(resp))
	return nil
}

type questionPayload struct {
	Question string `json:"question"`
}

// Ask sends a free-form question to the chatbot endpoint.
func (a *App) Ask(ctx context.Context, question string) error {
	resp, err := a.postJSON(ctx, "/chatbot/", questionPayload{Question: question})
	if err != nil {
		log.Printf("Server unavailable: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("error: %s", readServerText(resp))
		return nil
	}

	text, err := prettyJSON(resp.Body)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(text)
	return nil
}
