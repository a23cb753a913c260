package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ismail26477/veda-ai-task1/core"
)

// seedDrafts builds the demo data set with due dates relative to today.
func seedDrafts(today time.Time) []core.Draft {
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	return []core.Draft{
		{
			Title:       "Property viewing at Green Valley",
			Description: "Meet with client to show 3BHK apartment",
			Priority:    core.PriorityHigh,
			DueDate:     day(0),
			Time:        "10:00",
			Location:    "Green Valley Township, Sector 45",
			Category:    core.CategoryRealEstate,
			Status:      core.StatusPending,
			ClientName:  "Rajesh Kumar",
		},
		{
			Title:       "Facebook Ads Campaign Review",
			Description: "Analyze Q4 campaign performance and prepare report",
			Priority:    core.PriorityMedium,
			DueDate:     day(0),
			Time:        "14:00",
			Category:    core.CategoryDigitalMarketing,
			Status:      core.StatusInProgress,
		},
		{
			Title:       "Sprint Planning Meeting",
			Description: "Plan next sprint with development team",
			Priority:    core.PriorityHigh,
			DueDate:     day(0),
			Time:        "11:00",
			Category:    core.CategorySoftwareDev,
			Status:      core.StatusPending,
		},
		{
			Title:        "Loan Application Follow-up",
			Description:  "Follow up on pending home loan application",
			Priority:     core.PriorityMedium,
			DueDate:      day(1),
			Time:         "15:00",
			Category:     core.CategoryLoan,
			Status:       core.StatusPending,
			ClientName:   "Priya Sharma",
			FollowUpDate: day(2),
		},
		{
			Title:       "Website SEO Audit",
			Description: "Complete SEO audit for client website",
			Priority:    core.PriorityLow,
			DueDate:     day(2),
			Time:        "09:00",
			Category:    core.CategoryDigitalMarketing,
			Status:      core.StatusPending,
		},
		{
			Title:       "Client Property Documentation",
			Description: "Prepare and verify all property documents for new client",
			Priority:    core.PriorityHigh,
			DueDate:     day(1),
			Time:        "16:00",
			Location:    "Office",
			Category:    core.CategoryRealEstate,
			Status:      core.StatusPending,
			ClientName:  "Amit Verma",
		},
		{
			Title:       "AI Chatbot Development Review",
			Description: "Review progress on customer service AI chatbot",
			Priority:    core.PriorityMedium,
			DueDate:     day(3),
			Time:        "13:00",
			Category:    core.CategorySoftwareDev,
			Status:      core.StatusPending,
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo task set",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}

			drafts := seedDrafts(time.Now())
			for _, d := range drafts {
				if _, err := s.Create(cmd.Context(), d); err != nil {
					return fmt.Errorf("seed %q: %w", d.Title, err)
				}
			}
			fmt.Printf("%d tasks inserted successfully\n", len(drafts))
			return nil
		},
	}
}
