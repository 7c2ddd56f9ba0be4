package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fflow/fflow/financeflow"
)

var capitalCmd = &cobra.Command{
	Use:   "capital",
	Short: "Manage shared capital groups",
	Long: `Capital groups combine wallet balances of multiple accounts into one
shared view. Members are added by invitation.`,
}

var capitalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List capital groups you belong to",
	RunE:  runCapitalList,
}

var capitalCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new capital group",
	Args:  cobra.ExactArgs(1),
	RunE:  runCapitalCreate,
}

var capitalDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a capital group you own",
	Args:  cobra.ExactArgs(1),
	RunE:  runCapitalDelete,
}

var capitalInviteCmd = &cobra.Command{
	Use:   "invite [group-id] [email]",
	Short: "Invite a user to a capital group",
	Args:  cobra.ExactArgs(2),
	RunE:  runCapitalInvite,
}

var capitalInvitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "List your pending invitations",
	RunE:  runCapitalInvitations,
}

var capitalAcceptCmd = &cobra.Command{
	Use:   "accept [invitation-id]",
	Short: "Accept a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.AcceptCapitalInvitation(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Invitation accepted.")
		return nil
	},
}

var capitalDeclineCmd = &cobra.Command{
	Use:   "decline [invitation-id]",
	Short: "Decline a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.DeclineCapitalInvitation(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Invitation declined.")
		return nil
	},
}

func init() {
	capitalCmd.AddCommand(capitalListCmd)
	capitalCmd.AddCommand(capitalCreateCmd)
	capitalCmd.AddCommand(capitalDeleteCmd)
	capitalCmd.AddCommand(capitalInviteCmd)
	capitalCmd.AddCommand(capitalInvitationsCmd)
	capitalCmd.AddCommand(capitalAcceptCmd)
	capitalCmd.AddCommand(capitalDeclineCmd)
	rootCmd.AddCommand(capitalCmd)
}

func runCapitalList(cmd *cobra.Command, args []string) error {
	groups, err := client.ListCapitalGroups(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch capital groups: %w", err)
	}

	if len(groups) == 0 {
		fmt.Println("No capital groups. Create one with 'fflow capital create'.")
		return nil
	}

	for _, g := range groups {
		fmt.Printf("%s  total %s  (%d member(s))", g.Name, g.Total.StringFixed(2), len(g.Members))
		if cfg.Safety.ShowDetails {
			fmt.Printf("  id=%s", g.ID)
		}
		fmt.Println()
		for _, m := range g.Members {
			fmt.Printf("  %-25s %s\n", fmt.Sprintf("%s <%s>", m.Name, m.Email), m.Balance.StringFixed(2))
		}
	}
	return nil
}

func runCapitalCreate(cmd *cobra.Command, args []string) error {
	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would create capital group %q\n", args[0])
		return nil
	}

	group, err := client.CreateCapitalGroup(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to create capital group: %w", err)
	}
	fmt.Printf("Created capital group %q (id=%s)\n", group.Name, group.ID)
	return nil
}

func runCapitalDelete(cmd *cobra.Command, args []string) error {
	if cfg.Safety.DryRun {
		fmt.Printf("DRY RUN: Would delete capital group %s\n", args[0])
		return nil
	}

	if cfg.Safety.ConfirmDelete && !confirmAction("Delete this capital group? Members lose the shared view.") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteCapitalGroup(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete capital group: %w", err)
	}
	fmt.Println("Deleted.")
	return nil
}

func runCapitalInvite(cmd *cobra.Command, args []string) error {
	groupID, email := args[0], args[1]

	invitation, err := client.InviteToCapitalGroup(context.Background(), groupID, email)
	if err != nil {
		if apiErr, ok := financeflow.AsAPIError(err); ok {
			return fmt.Errorf("invitation failed: %s", apiErr.Message)
		}
		return err
	}

	fmt.Printf("Invited %s to %q (invitation id=%s)\n", invitation.Email, invitation.GroupName, invitation.ID)
	return nil
}

func runCapitalInvitations(cmd *cobra.Command, args []string) error {
	invitations, err := client.ListCapitalInvitations(context.Background())
	if err != nil {
		return err
	}

	if len(invitations) == 0 {
		fmt.Println("No pending invitations.")
		return nil
	}

	for _, inv := range invitations {
		fmt.Printf("%s invited you to %q (%s)  id=%s\n",
			inv.InvitedBy, inv.GroupName, inv.CreatedAt.Format("2006-01-02"), inv.ID)
	}
	fmt.Println("\nAccept with 'fflow capital accept <id>' or decline with 'fflow capital decline <id>'.")
	return nil
}
