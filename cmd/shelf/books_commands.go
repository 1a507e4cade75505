package main

import (
	"fmt"
	"strconv"
	"strings"

	"bookclient/internal/api"
	"bookclient/internal/entity"

	"github.com/spf13/cobra"
)

func newBooksCmd() *cobra.Command {
	books := &cobra.Command{
		Use:   "books",
		Short: "Browse the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			list, err := a.client.ListBooks(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No books in the catalog.")
				return nil
			}

			printBooks(list)
			return nil
		},
	}

	books.AddCommand(newBooksAddCmd(), newBooksRemoveCmd())
	return books
}

func newBooksAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := requireAdmin(a); err != nil {
				return err
			}

			book := entity.Book{
				Title:       prompt(a.scanner, "Title: "),
				Author:      prompt(a.scanner, "Author: "),
				Genre:       prompt(a.scanner, "Genre: "),
				ISBN:        prompt(a.scanner, "ISBN: "),
				Description: prompt(a.scanner, "Description: "),
			}
			if year := prompt(a.scanner, "Published year: "); year != "" {
				book.PublishedYear, _ = strconv.Atoi(year)
			}
			if strings.TrimSpace(book.Title) == "" {
				return fmt.Errorf("title is required")
			}

			created, err := a.client.CreateBook(cmd.Context(), book)
			if err != nil {
				return err
			}
			fmt.Printf("Added book %q with ID %s\n", created.Title, created.ID)
			return nil
		},
	}
}

func newBooksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <book-id>",
		Short: "Remove a book from the catalog (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := requireAdmin(a); err != nil {
				return err
			}

			if err := a.client.DeleteBook(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed book %s\n", args[0])
			return nil
		},
	}
}

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Fetch book recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			genres := splitCSV(prompt(a.scanner, "Genres (comma separated, optional): "))
			authors := splitCSV(prompt(a.scanner, "Authors (comma separated, optional): "))

			books, err := a.client.GetRecommendations(cmd.Context(), api.RecommendationRequest{
				Genres:  genres,
				Authors: authors,
			})
			if err != nil {
				return err
			}
			if len(books) == 0 {
				fmt.Println("Nothing to recommend yet.")
				return nil
			}

			printBooks(books)
			return nil
		},
	}
}

func requireAdmin(a *app) error {
	user := a.session.User()
	if user == nil || user.Role != entity.RoleAdmin {
		return fmt.Errorf("this command needs an admin session")
	}
	return nil
}

func printBooks(books []entity.Book) {
	fmt.Printf("%-24s %-30s %-20s %-10s %-6s\n", "ID", "Title", "Author", "Genre", "Rating")
	fmt.Println(strings.Repeat("-", 95))
	for _, b := range books {
		fmt.Printf("%-24s %-30s %-20s %-10s %-6.1f\n",
			truncateString(b.ID, 24),
			truncateString(b.Title, 30),
			truncateString(b.Author, 20),
			truncateString(b.Genre, 10),
			b.Rating)
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
