package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/waliuddin1105/crowdfund/configs"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

const receiptTemplate = `<!DOCTYPE html>
<html>
<head><style>
body { font-family: Georgia, serif; margin: 48px; color: #1a1a2e; }
.box { border: 2px solid #1a1a2e; padding: 32px; }
h1 { letter-spacing: 2px; }
.amount { font-size: 28px; font-weight: bold; }
.meta { color: #555; font-size: 13px; margin-top: 24px; }
</style></head>
<body>
<div class="box">
	<h1>Donation Receipt</h1>
	<p>Thank you, <strong>{{.DonorName}}</strong>, for supporting
	<strong>{{.CampaignTitle}}</strong>.</p>
	<p class="amount">{{printf "%.2f" .Amount}}</p>
	<p>Paid via {{.Method}} on {{.Date}}</p>
	<p class="meta">Receipt {{.ReceiptID}} &middot; CrowdFund</p>
</div>
</body>
</html>`

// ReceiptService renders a donation receipt to PDF with headless Chrome
// and stores it on Cloudinary. It runs entirely outside the payment
// transaction; failures are logged and dropped.
type ReceiptService struct {
	DB *gorm.DB
}

func NewReceiptService(db *gorm.DB) *ReceiptService {
	return &ReceiptService{DB: db}
}

func (s *ReceiptService) IssueReceipt(payment models.Payment) {
	var full models.Payment
	err := s.DB.Preload("Donation").Preload("Donation.Donor").Preload("Donation.Campaign").
		First(&full, "id = ?", payment.ID).Error
	if err != nil {
		log.Printf("🔥 Receipt: failed to load payment %s: %v", payment.ID, err)
		return
	}

	html, err := renderReceiptHTML(full)
	if err != nil {
		log.Printf("🔥 Receipt: failed to render HTML for payment %s: %v", payment.ID, err)
		return
	}

	pdfBytes, err := renderPDF(html)
	if err != nil {
		log.Printf("🔥 Receipt: failed to generate PDF for payment %s: %v", payment.ID, err)
		return
	}

	url, err := uploadReceipt(pdfBytes, full.ID.String())
	if err != nil {
		log.Printf("🔥 Receipt: failed to upload PDF for payment %s: %v", payment.ID, err)
		return
	}

	log.Printf("✅ Receipt for payment %s uploaded: %s", payment.ID, url)
}

func renderReceiptHTML(payment models.Payment) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		DonorName     string
		CampaignTitle string
		Amount        float64
		Method        string
		Date          string
		ReceiptID     string
	}{
		DonorName:     payment.Donation.Donor.Username,
		CampaignTitle: payment.Donation.Campaign.Title,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Date:          payment.TransactionDate.Format("January 2, 2006"),
		ReceiptID:     payment.ID.String(),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func renderPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceipt(fileBytes []byte, paymentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", paymentID, uuid.New().String()),
		Folder:       "crowdfund_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
