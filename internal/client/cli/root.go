package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Root runs the interactive command loop until EOF or "exit".
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to carteira CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("carteira %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: documents, show <kind>, balance, topup, ask <question>, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)

		case "login":
			a.Login(ctx)

		case "documents":
			a.Documents(ctx)

		case "show":
			if len(args) != 1 {
				fmt.Println("usage: show <cpf|rg|cnh|vaccination_card>")
				continue
			}
			a.Document(ctx, args[0])

		case "balance":
			a.Balance(ctx)

		case "topup":
			a.TopUp(ctx)

		case "ask":
			if len(args) == 0 {
				fmt.Println("usage: ask <question>")
				continue
			}
			a.Ask(ctx, strings.Join(args, " "))

		case "exit", "quit":
			return

		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}
