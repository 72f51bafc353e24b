package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerbook-cli",
		Short: "LedgerBook CLI tool",
		Long:  `A command line interface for interacting with the LedgerBook API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerBook API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd(), entryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var accountNumber, holderName, accountType string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/accounts/", map[string]any{
				"account_number": accountNumber,
				"holder_name":    holderName,
				"type":           accountType,
			})
		},
	}
	createCmd.Flags().StringVar(&accountNumber, "number", "", "Account number")
	createCmd.Flags().StringVar(&holderName, "holder", "", "Holder name")
	createCmd.Flags().StringVar(&accountType, "type", "", "Account type (ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)")
	createCmd.MarkFlagRequired("number")
	createCmd.MarkFlagRequired("holder")
	createCmd.MarkFlagRequired("type")

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/accounts/" + args[0])
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance [id]",
		Short: "Get an account's current balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/accounts/" + args[0] + "/balance")
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/accounts/")
		},
	}

	cmd.AddCommand(createCmd, getCmd, balanceCmd, listCmd)

	return cmd
}

func entryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entry operations",
	}

	var entryNumber, entryDate, description, linesJSON string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft journal entry",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"entry_number": entryNumber,
				"entry_date":   entryDate,
				"description":  description,
			}

			if linesJSON != "" {
				var lines []map[string]any
				if err := json.Unmarshal([]byte(linesJSON), &lines); err != nil {
					fmt.Printf("Invalid lines JSON: %v\n", err)
					os.Exit(1)
				}
				payload["lines"] = lines
			}

			doPost("/api/v1/entries/", payload)
		},
	}
	createCmd.Flags().StringVar(&entryNumber, "number", "", "Entry number")
	createCmd.Flags().StringVar(&entryDate, "date", "", "Entry date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&description, "description", "", "Description")
	createCmd.Flags().StringVar(&linesJSON, "lines", "", `Lines as JSON, e.g. '[{"account_id":"...","side":"DEBIT","amount":"100.00"}]'`)
	createCmd.MarkFlagRequired("number")
	createCmd.MarkFlagRequired("date")

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a journal entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/entries/" + args[0])
		},
	}

	postCmd := &cobra.Command{
		Use:   "post [id]",
		Short: "Post a draft entry to the ledger",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/entries/"+args[0]+"/post", nil)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/entries/")
		},
	}

	cmd.AddCommand(createCmd, showCmd, postCmd, listCmd)

	return cmd
}

func doGet(path string) {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func doPost(path string, payload any) {
	client := &http.Client{Timeout: timeout}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode payload: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	resp, err := client.Post(baseURL+path, "application/json", body)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
