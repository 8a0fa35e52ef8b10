package bot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hotelier/internal/dialog"
	"hotelier/internal/hotel"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
)

// handleExport выгружает все бронирования в Excel и отправляет файл
// менеджеру документом.
func (b *Bot) handleExport(chatID int64) {
	list := b.desk.AllBookings()

	filePath, err := b.exportToExcel(list)
	if err != nil {
		b.metrics.ErrorsTotal.Inc()
		b.logger.Error().Err(err).Msg("export to excel")
		b.sendMessage(chatID, "Ошибка при создании файла экспорта")
		return
	}

	file, err := os.Open(filePath)
	if err != nil {
		b.logger.Error().Err(err).Str("path", filePath).Msg("open export file")
		b.sendMessage(chatID, "Ошибка при открытии файла")
		return
	}
	defer file.Close()

	fileReader := tgbotapi.FileReader{
		Name:   filepath.Base(filePath),
		Reader: file,
	}

	doc := tgbotapi.NewDocument(chatID, fileReader)
	doc.Caption = fmt.Sprintf("Экспорт бронирований на %s", time.Now().Format("02.01.2006 15:04"))

	if _, err := b.tg.Send(doc); err != nil {
		b.logger.Error().Err(err).Msg("send export document")
		b.sendMessage(chatID, "Ошибка при отправке файла")
		return
	}
}

// exportToExcel создает Excel файл со списком бронирований
func (b *Bot) exportToExcel(list []hotel.Reservation) (string, error) {
	if err := os.MkdirAll(b.config.Exports.Path, 0755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Бронирования"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Пользователь", "Гость", "Номер", "Заезд", "Выезд", "Ночей", "Цена за ночь", "Стоимость", "Создано"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, res := range list {
		row := i + 2
		values := []interface{}{
			res.ID,
			res.UserID,
			res.GuestName,
			res.RoomNumber,
			res.CheckIn.Format(dialog.DateLayout),
			res.CheckOut.Format(dialog.DateLayout),
			res.Nights,
			res.PricePerNight,
			res.TotalPrice,
			res.CreatedAt.Format("02.01.2006 15:04"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filePath := filepath.Join(b.config.Exports.Path,
		fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return filePath, nil
}
