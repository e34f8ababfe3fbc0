package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag  string
	userFlag string
	rootCmd  = &cobra.Command{
		Use:   "assistantctl",
		Short: "CLI client for the assistant REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Assistant service base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")

	chatCmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Send one message, creating a conversation unless --conversation is set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			convID, _ := cmd.Flags().GetString("conversation")
			personality, _ := cmd.Flags().GetString("personality")
			provider, _ := cmd.Flags().GetString("provider")
			return runChat(newClient(apiFlag, userFlag), convID, personality, provider, args[0], os.Stdout)
		},
	}
	chatCmd.Flags().StringP("conversation", "c", "", "Existing conversation ID")
	chatCmd.Flags().StringP("personality", "p", "", "Personality for a new conversation (sweet, angry, grandpa)")
	chatCmd.Flags().String("provider", "", "Provider for a new conversation")
	rootCmd.AddCommand(chatCmd)

	listCmd := &cobra.Command{
		Use:   "conversations",
		Short: "List conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runListConversations(newClient(apiFlag, userFlag), os.Stdout)
		},
	}
	rootCmd.AddCommand(listCmd)

	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: "List providers and their configuration state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runProviders(newClient(apiFlag, userFlag), os.Stdout)
		},
	}
	rootCmd.AddCommand(providersCmd)

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search conversations, blogs, decks and saved answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")
			typ, _ := cmd.Flags().GetString("type")
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runSearch(newClient(apiFlag, userFlag), query, typ, os.Stdout)
		},
	}
	searchCmd.Flags().StringP("query", "q", "", "Search query text (required)")
	searchCmd.Flags().StringP("type", "t", "", "Limit to one result type")
	_ = searchCmd.MarkFlagRequired("query")
	rootCmd.AddCommand(searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
