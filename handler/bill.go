package handler

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/utils"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BillExpiry is how long a bill and its stored image live before the reaper
// removes them.
const BillExpiry = 24 * time.Hour

var billImageStore helper.ImageStore

// SetImageStore wires the external image store used by the bill handlers.
// Called once from main; tests substitute a fake.
func SetImageStore(store helper.ImageStore) {
	billImageStore = store
}

func loadOwnBill(order model.Order) (*model.Bill, error) {
	var bill model.Bill
	if err := database.DB.Where("order_id = ?", order.ID).First(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// UpsertBillCharges writes the tax-rate set of an order's bill and recomputes
// the total. Calling it twice with the same rates yields the same total.
func UpsertBillCharges(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)
	charges := c.Locals("charges").(model.BillChargesInput)

	var bill model.Bill
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).First(&bill).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			bill = model.Bill{OwnerID: order.OwnerID, OrderID: order.ID}
		}

		bill.VatLow = charges.VatLow
		bill.VatHigh = charges.VatHigh
		bill.ServiceTax = charges.ServiceTax
		bill.ServiceCharge = charges.ServiceCharge

		totals := helper.CalculateTotals(helper.OrderBaseAmount(order.Items, order.DiscountAmount), helper.TaxRates{
			VatLow:        charges.VatLow,
			VatHigh:       charges.VatHigh,
			ServiceTax:    charges.ServiceTax,
			ServiceCharge: charges.ServiceCharge,
		})
		bill.TotalAmount = totals.TotalAmount
		bill.ExpiresAt = time.Now().Add(BillExpiry)

		return tx.Save(&bill).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update bill charges", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bill)
}

// SetBillStoreLink records the external URL and public ID of a rendered bill
// image, lazily creating the bill. ?modified=true targets the modified
// variant. A replaced image is destroyed on the store, best effort.
func SetBillStoreLink(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)
	input := c.Locals("storeLink").(model.BillStoreLinkInput)
	modified := c.Query("modified") == "true"

	var bill model.Bill
	var replaced *string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).First(&bill).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			bill = model.Bill{OwnerID: order.OwnerID, OrderID: order.ID}
			totals := helper.CalculateTotals(helper.OrderBaseAmount(order.Items, order.DiscountAmount), helper.TaxRates{})
			bill.TotalAmount = totals.TotalAmount
		}

		if modified {
			replaced = bill.ModifiedStoreItemID
			bill.ModifiedStoreLink = &input.StoreLink
			bill.ModifiedStoreItemID = &input.StoreItemID
		} else {
			replaced = bill.StoreItemID
			bill.StoreLink = &input.StoreLink
			bill.StoreItemID = &input.StoreItemID
		}
		bill.ExpiresAt = time.Now().Add(BillExpiry)

		return tx.Save(&bill).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot save store link", err)
	}

	if replaced != nil && *replaced != input.StoreItemID && billImageStore != nil {
		if err := billImageStore.Destroy(context.Background(), *replaced); err != nil {
			log.Printf("failed to delete replaced bill image %s: %v", *replaced, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bill)
}

// UploadBillImage uploads a rendered bill image server-side and records the
// resulting link, same path as SetBillStoreLink.
func UploadBillImage(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)

	if billImageStore == nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image store not configured", errors.New("no image store"))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}
	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read image file", err)
	}
	defer reader.Close()

	publicID := fmt.Sprintf("bill_%d_%d", order.ID, time.Now().Unix())
	url, id, err := billImageStore.Upload(c.Context(), reader, "bills", publicID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot upload bill image", err)
	}

	c.Locals("storeLink", model.BillStoreLinkInput{StoreLink: url, StoreItemID: id})
	return SetBillStoreLink(c)
}

// GetBill returns the bill with its per-charge amounts and an order-code QR.
func GetBill(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)

	bill, err := loadOwnBill(order)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BILL_NOT_FOUND, err)
	}

	totals := helper.CalculateTotals(helper.OrderBaseAmount(order.Items, order.DiscountAmount), helper.TaxRates{
		VatLow:        bill.VatLow,
		VatHigh:       bill.VatHigh,
		ServiceTax:    bill.ServiceTax,
		ServiceCharge: bill.ServiceCharge,
	})

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("failed to build QR for order %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bill":       bill,
		"orderCode":  order.PublicCode,
		"baseAmount": helper.OrderBaseAmount(order.Items, order.DiscountAmount),
		"amounts":    totals,
		"qrCode":     qrBase64,
	})
}

// EmailBill mails the bill to the given address (async).
func EmailBill(c *fiber.Ctx) error {
	order := c.Locals("order").(model.Order)

	type EmailRequest struct {
		Email string `json:"email"`
	}
	var req EmailRequest
	if err := c.BodyParser(&req); err != nil || !helper.ValidEmail(req.Email) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Valid email is required", err)
	}

	bill, err := loadOwnBill(order)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BILL_NOT_FOUND, err)
	}

	var ownerRecord model.Owner
	database.DB.First(&ownerRecord, order.OwnerID)

	lines := make([]utils.BillEmailLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, utils.BillEmailLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Amount:   item.Price * float64(item.Quantity),
		})
	}
	billLink := ""
	if bill.StoreLink != nil {
		billLink = *bill.StoreLink
	}

	utils.SendBillEmail(req.Email, utils.BillEmailData{
		OrderCode:    order.PublicCode,
		BusinessName: ownerRecord.BusinessName,
		Lines:        lines,
		BaseAmount:   helper.OrderBaseAmount(order.Items, order.DiscountAmount),
		TotalAmount:  bill.TotalAmount,
		BillLink:     billLink,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Bill email queued"})
}

// GenerateSignature signs client-side direct uploads: SHA1 over the sorted
// params plus the API secret, the scheme Cloudinary expects.
func GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // Parse but don't sign
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid signature params", err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Raw values, no URL encoding.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}
