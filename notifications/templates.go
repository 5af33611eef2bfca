package notifications

import "fmt"

// Campaign decision emails mirror the templates the review flow sends on
// approval and rejection.

func CampaignApprovedEmail(username, campaignTitle string) (subject, html string) {
	subject = "Your Campaign has been Approved!"
	html = fmt.Sprintf(
		"<h1>Congratulations, %s!</h1><p>Your campaign <strong>%s</strong> has been approved and is now live on CrowdFund. Donors can start supporting it right away.</p>",
		username, campaignTitle,
	)
	return subject, html
}

func CampaignRejectedEmail(username, campaignTitle, comments string) (subject, html string) {
	subject = "Update on Your Campaign"
	html = fmt.Sprintf(
		"<h1>Campaign Update</h1><p>Hi %s, after careful review your campaign <strong>%s</strong> was not approved at this time.</p>",
		username, campaignTitle,
	)
	if comments != "" {
		html += fmt.Sprintf("<p>Reviewer comments: %s</p>", comments)
	}
	return subject, html
}

func CampaignDeadlineEmail(username, campaignTitle string, raised, goal float64) (subject, html string) {
	subject = "Your Campaign has Reached its End Date"
	html = fmt.Sprintf(
		"<h1>Campaign Deadline Reached</h1><p>Hi %s, your campaign <strong>%s</strong> has passed its end date with %.2f raised of a %.2f goal.</p>",
		username, campaignTitle, raised, goal,
	)
	return subject, html
}
