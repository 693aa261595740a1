package main

import (
	"github.com/spf13/cobra"
)

func blogCmd(build appBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Read the travel blog",
	}

	var (
		page    int
		perPage int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			posts, err := a.blog.ListPosts(cmd.Context(), page, perPage)
			if err != nil {
				return err
			}
			return printJSON(posts)
		},
	}
	list.Flags().IntVar(&page, "page", 0, "Page number")
	list.Flags().IntVar(&perPage, "per-page", 0, "Results per page")

	get := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one post by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			post, err := a.blog.GetPost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(post)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
