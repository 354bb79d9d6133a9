package controllers

import (
	"fmt"

	"menu-catalog/models"
	"menu-catalog/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportController writes a menu's line tree into an Excel workbook for
// offline review by the restaurant staff.
type ExportController struct {
	DB     *gorm.DB
	lines  *repositories.LineRepository
	render *repositories.RenderRepository
}

func NewExportController(DB *gorm.DB) *ExportController {
	return &ExportController{
		DB:     DB,
		lines:  repositories.NewLineRepository(DB),
		render: repositories.NewRenderRepository(DB),
	}
}

func (c *ExportController) ExportMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	tenantID := tenantFromCtx(ctx)
	menu, lines, err := c.lines.MenuTree(tenantID, uint(menuID))
	if err != nil {
		return repoError(ctx, err)
	}

	file := excelize.NewFile()
	sheet := "Menu"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"Line ID", "Type", "Section/Item", "SKU", "Price", "Enabled", "Display Order"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, h)
	}

	row := 2
	writeLine := func(line models.MenuLine, indent string) {
		label := ""
		sku := ""
		var price interface{}
		if line.LineType == models.LineTypeSection && line.Section != nil {
			label = fmt.Sprintf("Section %d", line.Section.ID)
		}
		if line.LineType == models.LineTypeItem && line.Item != nil {
			label = fmt.Sprintf("Item %d", line.Item.ID)
			sku = line.Item.SKU
			price = line.Item.Price
		}
		file.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.ID)
		file.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.LineType)
		file.SetCellValue(sheet, fmt.Sprintf("C%d", row), indent+label)
		file.SetCellValue(sheet, fmt.Sprintf("D%d", row), sku)
		if price != nil {
			file.SetCellValue(sheet, fmt.Sprintf("E%d", row), price)
		}
		file.SetCellValue(sheet, fmt.Sprintf("F%d", row), line.IsEnabled)
		file.SetCellValue(sheet, fmt.Sprintf("G%d", row), line.DisplayOrder)
		row++
	}

	for _, line := range lines {
		writeLine(line, "")
		for _, child := range line.Children {
			writeLine(child, "  ")
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, menu.Code))
	return ctx.Send(buf.Bytes())
}
