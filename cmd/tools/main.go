// Token mint for development and e2e runs. The broker only verifies
// tokens; in production they come from the credential service. This tool
// stands in for it against a local broker.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"resto-live/auth"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "shared signing secret (defaults to JWT_SECRET)")
	userID := flag.String("user", "", "user id to embed in the token")
	role := flag.String("role", "waiter", "role to embed in the token (owner, waiter, kitchen, customer)")
	duration := flag.Duration("duration", 24*time.Hour, "token validity")
	flag.Parse()

	if *secret == "" || *userID == "" {
		log.Fatal("both -secret (or JWT_SECRET) and -user are required")
	}

	token, err := auth.GenerateToken(*secret, *userID, *role, *duration)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	color.New(color.BgBlack, color.FgGreen).Println("  ====== resto-live token ======")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Claim", "Value"})
	table.Append([]string{"user_id", *userID})
	table.Append([]string{"role", *role})
	table.Append([]string{"expires", time.Now().Add(*duration).UTC().Format(time.RFC3339)})
	table.Render()

	fmt.Println(token)
}
