// Command client is a one-shot CLI consumer of the campus-market API.
//
// Usage:
//
//	client [-s address] [-timeout d] <command> [command flags]
//
// Commands:
//
//	signup  -prn -password -name -course -year [-interests]
//	login   -prn -password
//	dashboard -token
//	add     -token -title -price [-description] [-image-url]
//	list    -token
//	delete  -token -id
//	profile -token -id
//
// login prints the issued bearer token; pass it to the authenticated
// commands via -token.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/campusmarket/campus-market/internal/adapter"
	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/models"
)

func main() {
	log := logger.NewLogger("campus-market-client")

	serverAddress := flag.String("s", "http://localhost:5000", "server base URL")
	requestTimeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	client := adapter.NewHTTPAPIClient(adapter.HTTPClientConfig{
		BaseURL: *serverAddress,
		Timeout: *requestTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *requestTimeout)
	defer cancel()

	command, args := flag.Arg(0), flag.Args()[1:]
	if err := runCommand(ctx, client, command, args); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

func runCommand(ctx context.Context, client adapter.APIClient, command string, args []string) error {
	switch command {
	case "signup":
		return runSignup(ctx, client, args)
	case "login":
		return runLogin(ctx, client, args)
	case "dashboard":
		return runDashboard(ctx, client, args)
	case "add":
		return runAddItem(ctx, client, args)
	case "list":
		return runListItems(ctx, client, args)
	case "delete":
		return runDeleteItem(ctx, client, args)
	case "profile":
		return runProfile(ctx, client, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runSignup(ctx context.Context, client adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	prn := fs.String("prn", "", "12-digit PRN")
	password := fs.String("password", "", "password")
	name := fs.String("name", "", "full name as on the roster")
	course := fs.String("course", "", "course as on the roster")
	year := fs.Int("year", 0, "year as on the roster")
	interests := fs.String("interests", "", "profile interests")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := client.Signup(ctx, models.SignupRequest{
		PRN:       *prn,
		Password:  *password,
		Name:      *name,
		Course:    *course,
		Year:      *year,
		Interests: *interests,
	}); err != nil {
		return err
	}

	fmt.Println("registered; log in to obtain a token")
	return nil
}

func runLogin(ctx context.Context, client adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	prn := fs.String("prn", "", "12-digit PRN")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := client.Login(ctx, models.LoginRequest{PRN: *prn, Password: *password})
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s (id %d)\n", user.Name, user.UserID)
	fmt.Printf("token: %s\n", client.Token())
	return nil
}

func runDashboard(ctx context.Context, client adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client.SetToken(*token)

	message, err := client.Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

func runAddItem(ctx context.Context, client adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	title := fs.String("title", "", "listing title")
	price := fs.Float64("price", 0, "listing price")
	description := fs.String("description", "", "optional description")
	imageURL := fs.String("image-url", "", "optional image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client.SetToken(*token)

	req := models.AddItemRequest{Title: *title, Price: *price}
	if *description != "" {
		req.Description = description
	}
	if *imageURL != "" {
		req.ImageURL = imageURL
	}

	if err := client.AddItem(ctx, req); err != nil {
		return err
	}

	fmt.Println("item added")
	return nil
}

func runListItems(ctx context.Context, client adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client.SetToken(*token)

	listings, err := client.ListItems(ctx)
	if err != nil {
		return err
	}

	for _, item := range listings {
		description := ""
		if item.Description != nil {
			description = *item.Description
		}
		fmt.Printf("#%d\t%.2f\t%s\t(seller: %s)\t%s\n", item.ID, item.Price, item.Title, item.Seller, description)
	}
	return nil
}

func runDeleteItem(ctx context.Context, client adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	itemID := fs.Int64("id", 0, "listing id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client.SetToken(*token)

	if err := client.DeleteItem(ctx, *itemID); err != nil {
		return err
	}

	fmt.Println("item deleted")
	return nil
}

func runProfile(ctx context.Context, client adapter.APIClient, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	userID := fs.Int64("id", 0, "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client.SetToken(*token)

	profile, err := client.Profile(ctx, *userID)
	if err != nil {
		return err
	}

	fmt.Printf("id: %d\nprn: %s\nname: %s\ncourse: %s\nyear: %d\ninterests: %s\n",
		profile.UserID, profile.PRN, profile.Name, profile.Course, profile.Year, profile.Interests)
	return nil
}
