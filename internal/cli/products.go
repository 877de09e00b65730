// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// products.go - Catalog browsing command handlers for phonewise CLI.
//
// CLI: Comprehensive help and examples for all commands
//
// Handles "phonewise products" (list, detail, brand, category) and
// "phonewise compare".
//
// Examples:
//   phonewise products --brand Samsung --max-price 40000
//   phonewise products 12
//   phonewise products search "good camera under 50000"
//   phonewise products brand OnePlus
//   phonewise products category gaming --max-price 35000
//   phonewise compare 3 7 12
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/store"
)

// productsTimeout bounds every catalog request.
const productsTimeout = 15 * time.Second

// HandleProducts handles the "products" command and its subcommands.
func HandleProducts(args Args) error {
	client := newClient(args)
	ctx, cancel := context.WithTimeout(context.Background(), productsTimeout)
	defer cancel()

	// Numeric first argument: show one phone in detail.
	if args.Subcommand != "" {
		if id, err := strconv.Atoi(args.Subcommand); err == nil {
			return showProduct(ctx, client, id, args)
		}
	}

	switch args.Subcommand {
	case "search":
		rest := args.Raw[1:]
		if len(rest) == 0 {
			return fmt.Errorf("usage: phonewise products search \"gaming phone with good battery\"")
		}
		return searchProducts(ctx, client, rest, args)

	case "brand":
		rest := args.Raw[1:]
		if len(rest) == 0 {
			return fmt.Errorf("usage: phonewise products brand <name>")
		}
		resp, err := client.ByBrand(ctx, rest[0])
		if err != nil {
			return describeAPIError(err)
		}
		if args.JSON {
			return outputJSON(resp)
		}
		fmt.Println(TitleStyle.Render(rest[0] + " phones"))
		printPhoneList(resp.Products)
		return nil

	case "category":
		rest := args.Raw[1:]
		if len(rest) == 0 {
			return fmt.Errorf("usage: phonewise products category <flagship|budget|gaming|camera>")
		}
		sub := ParseSubArgs(rest[1:])
		resp, err := client.ByCategory(ctx, rest[0], sub.Float("max-price", 0))
		if err != nil {
			if errors.Is(err, api.ErrBadRequest) {
				return fmt.Errorf("unknown category %q: expected flagship, budget, gaming or camera", rest[0])
			}
			return describeAPIError(err)
		}
		if args.JSON {
			return outputJSON(resp)
		}
		fmt.Println(TitleStyle.Render(rest[0] + " phones"))
		printPhoneList(resp.Products)
		return nil

	default:
		sub := ParseSubArgs(args.Raw)
		opts := api.ListOptions{
			Brand:    sub.String("brand", ""),
			MinPrice: sub.Int("min-price", 0),
			MaxPrice: sub.Int("max-price", 0),
			MinRAM:   sub.Int("min-ram", 0),
			Limit:    sub.Int("limit", 20),
			Offset:   sub.Int("offset", 0),
		}
		resp, err := client.Products(ctx, opts)
		if err != nil {
			return describeAPIError(err)
		}
		if args.JSON {
			return outputJSON(resp)
		}
		fmt.Println(TitleStyle.Render("Phone catalog"))
		printPhoneList(resp.Products)
		return nil
	}
}

// searchProducts runs a natural-language catalog search. Flag arguments
// become structured filters; everything positional joins into the query.
func searchProducts(ctx context.Context, client *api.Client, rest []string, args Args) error {
	sub := ParseSubArgs(rest)

	query := strings.Join(sub.Positional(), " ")
	if query == "" {
		return fmt.Errorf("usage: phonewise products search \"gaming phone with good battery\"")
	}

	req := api.SearchRequest{Query: query}
	filters := &api.SearchFilters{Brand: sub.String("brand", "")}
	if v := sub.Float("max-price", 0); v > 0 {
		filters.MaxPrice = &v
	}
	if v := sub.Float("min-price", 0); v > 0 {
		filters.MinPrice = &v
	}
	if v := sub.Int("min-ram", 0); v > 0 {
		filters.MinRAM = &v
	}
	if filters.Brand != "" || filters.MaxPrice != nil || filters.MinPrice != nil || filters.MinRAM != nil {
		req.Filters = filters
	}

	resp, err := client.Search(ctx, req)
	if err != nil {
		return describeAPIError(err)
	}
	if args.JSON {
		return outputJSON(resp)
	}

	fmt.Println(TitleStyle.Render("Search: " + query))
	if resp.Explanation != "" {
		fmt.Println(DimStyle.Render(resp.Explanation))
	}
	printPhoneList(resp.Products)
	return nil
}

// showProduct fetches and prints one phone's full spec sheet.
func showProduct(ctx context.Context, client *api.Client, id int, args Args) error {
	phone, err := client.Product(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no phone with id %d", id)
		}
		return describeAPIError(err)
	}
	if args.JSON {
		return outputJSON(phone)
	}
	printPhoneDetail(phone)
	return nil
}

// HandleCompare handles "phonewise compare ID ID [ID ID]".
func HandleCompare(args Args) error {
	sub := ParseSubArgs(args.Raw)
	ids, err := sub.PositionalInts()
	if err != nil {
		return err
	}
	if len(ids) < store.MinCompare || len(ids) > store.MaxCompare {
		return fmt.Errorf("compare needs between %d and %d phone ids, got %d",
			store.MinCompare, store.MaxCompare, len(ids))
	}

	client := newClient(args)
	ctx, cancel := context.WithTimeout(context.Background(), productsTimeout)
	defer cancel()

	cmp, err := client.Compare(ctx, ids)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("one of the phone ids does not exist")
		}
		return describeAPIError(err)
	}

	if args.JSON {
		return outputJSON(cmp)
	}

	fmt.Println(TitleStyle.Render("Comparison"))
	printComparison(cmp)
	return nil
}
