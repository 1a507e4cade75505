package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bookclient/internal/bookdetail"

	"github.com/spf13/cobra"
)

func newBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "book <book-id>",
		Short: "Show one book and manage it interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			flow := bookdetail.NewFlow(a.client, a.log)
			if err := flow.LoadBook(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, bookdetail.ErrBookNotFound) {
					fmt.Println("Book not found.")
					return nil
				}
				return err
			}
			if err := flow.LoadLists(cmd.Context()); err != nil {
				fmt.Printf("Error: %v\n", err)
			}

			printBookDetail(flow)
			runDetailLoop(cmd.Context(), a, flow)
			return nil
		},
	}
}

func printBookDetail(flow *bookdetail.Flow) {
	b := flow.Book()
	fmt.Printf("\n%s\n", b.Title)
	fmt.Println(strings.Repeat("=", len(b.Title)))
	fmt.Printf("Author:    %s\n", b.Author)
	fmt.Printf("Genre:     %s\n", b.Genre)
	fmt.Printf("Published: %d\n", b.PublishedYear)
	fmt.Printf("ISBN:      %s\n", b.ISBN)
	fmt.Printf("Rating:    %.1f\n", b.Rating)
	if b.Description != "" {
		fmt.Printf("\n%s\n", b.Description)
	}
}

func runDetailLoop(ctx context.Context, a *app, flow *bookdetail.Flow) {
	fmt.Println("\nCommands: add (to reading list), reviews, review, back")

	for {
		cmd := prompt(a.scanner, "\nbook> ")
		switch cmd {
		case "add":
			handleAddToList(ctx, a, flow)
		case "reviews":
			handleShowReviews(ctx, flow)
		case "review":
			handleSubmitReview(ctx, a, flow)
		case "back", "quit", "exit", "":
			return
		default:
			fmt.Println("Unknown command. Use: add, reviews, review, back")
		}
	}
}

func handleAddToList(ctx context.Context, a *app, flow *bookdetail.Flow) {
	// Re-fetch so the picker reflects lists changed elsewhere.
	if err := flow.OpenPicker(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer flow.ClosePicker()

	lists := flow.Lists()
	if len(lists) == 0 {
		fmt.Println("You have no reading lists yet. Create one with 'shelf lists'.")
		return
	}

	fmt.Println("Your reading lists:")
	for _, l := range lists {
		marker := " "
		if l.ID == flow.SelectedID() {
			marker = "*"
		}
		fmt.Printf(" %s %-24s %s (%d books)\n", marker, l.ID, l.Name, len(l.BookIDs))
	}

	if id := prompt(a.scanner, "List ID (Enter keeps the marked one): "); id != "" {
		flow.Select(id)
	}

	if err := flow.ConfirmAdd(ctx); err != nil {
		fmt.Printf("Warning: %v\n", err)
		return
	}
	fmt.Printf("Added %q to the list.\n", flow.Book().Title)
}

func handleShowReviews(ctx context.Context, flow *bookdetail.Flow) {
	if err := flow.LoadReviews(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	reviews := flow.Reviews()
	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return
	}
	for _, r := range reviews {
		fmt.Printf("[%d/5] %s\n", r.Rating, r.Comment)
	}
}

func handleSubmitReview(ctx context.Context, a *app, flow *bookdetail.Flow) {
	ratingStr := prompt(a.scanner, "Rating (1-5): ")
	rating, err := strconv.Atoi(ratingStr)
	if err != nil {
		fmt.Printf("Invalid rating: %s\n", ratingStr)
		return
	}
	comment := prompt(a.scanner, "Comment: ")

	if err := flow.SubmitReview(ctx, bookdetail.ReviewForm{Rating: rating, Comment: comment}); err != nil {
		fmt.Printf("Warning: %v\n", err)
		return
	}
	fmt.Println("Review submitted.")
}
