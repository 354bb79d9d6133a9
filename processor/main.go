package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"menu-catalog/config"
	"menu-catalog/database"
	"menu-catalog/models"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Standalone digest: mails the list of menus currently live per location.
// Run from cron, e.g. once a day before opening hours.

func main() {
	config.LoadConfig()

	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	body, err := buildDigest(db)
	if err != nil {
		log.Fatalf("Failed to build digest: %v", err)
	}

	if config.DigestTo == "" || config.SMTPSender == "" {
		fmt.Println(body)
		return
	}

	if err := sendDigest(body); err != nil {
		log.Fatalf("Failed to send digest: %v", err)
	}
	fmt.Println("📧 Publication digest sent to", config.DigestTo)
}

func buildDigest(db *gorm.DB) (string, error) {
	var locations []models.Location
	if err := db.Where("is_active = ?", true).Order("tenant_id, code").Find(&locations).Error; err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Live menu publications as of " + time.Now().Format("2006-01-02 15:04") + "\n\n")

	for _, location := range locations {
		var pubs []models.MenuPublication
		err := db.Where("location_id = ? AND is_current = ?", location.ID, true).
			Order("activated_at asc").Find(&pubs).Error
		if err != nil {
			return "", err
		}

		sb.WriteString(fmt.Sprintf("%s (%s): %d menu(s)\n", location.Name, location.Code, len(pubs)))
		for _, pub := range pubs {
			var menu models.Menu
			if err := db.First(&menu, pub.MenuID).Error; err != nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("  - %s (activated %s)\n", menu.Code, pub.ActivatedAt.Format("2006-01-02")))
		}
	}
	return sb.String(), nil
}

func sendDigest(body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.DigestTo)
	msg.SetHeader("Subject", "Menu publication digest")
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
