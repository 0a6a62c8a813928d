package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
)

var ErrExportGenerateFail = apperrors.New(apperrors.KindInternal, 28001, "error_export_failed", "파일 생성에 실패했습니다")

// Localizer 批量翻译，导出文件的表头与状态按请求语言输出
type Localizer interface {
	ResolveMany(ctx context.Context, keys []string, lang i18n.Language) map[string]string
}

// 导出表头的翻译键，顺序即列顺序
var productExportColumns = []string{
	"product_name",
	"customer_name",
	"manager",
	"process_count",
	"shipping_status",
	"eta_date",
	"shipping_date",
}

// ExportService 导出业务接口
//
//   - 产品出货一览导出为 Excel (.xlsx)
//   - 有预计到货日的产品导出为 iCalendar 全天事件
//   - 内容以字节返回，由 Handler 设置响应头后写入
type ExportService interface {
	ProductsXLSX(ctx context.Context, lang i18n.Language) (*bytes.Buffer, string, error)
	ShippingICS(ctx context.Context, lang i18n.Language) ([]byte, string, error)
}

type exportService struct {
	repo      *repository.Repository
	localizer Localizer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, localizer Localizer, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, localizer: localizer, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ProductsXLSX 产品出货一览
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单个 Sheet，第一行为表头
//   - 每个产品一行：产品、客户、负责人、工序数、出货状态、预计到货日、出货日
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ProductsXLSX(ctx context.Context, lang i18n.Language) (*bytes.Buffer, string, error) {
	products, err := s.repo.Product.List(ctx)
	if err != nil {
		s.logger.Error("查询产品失败", zap.Error(err))
		return nil, "", apperrors.ErrInternal.Wrap(err)
	}

	labels := s.localizer.ResolveMany(ctx, append(productExportColumns, shippingStatusKeys()...), lang)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, key := range productExportColumns {
		col := colName(i)
		f.SetColWidth(sheetName, col, col, 18)
		f.SetCellValue(sheetName, cell(col, 1), labels[key])
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(productExportColumns)-1), 1), headerStyle)

	row := 2
	for i := range products {
		p := &products[i]
		values := []interface{}{p.Name, "", "", len(p.Processes), "", "", ""}
		if p.Customer != nil {
			values[1] = p.Customer.Name
		}
		if p.Manager != nil {
			values[2] = p.Manager.Username
		}
		if st := p.ShippingStatus; st != nil {
			values[4] = labels[st.Status]
			if st.EtaDate != nil {
				values[5] = *formatDate(st.EtaDate)
			}
			if st.ShippingDate != nil {
				values[6] = *formatDate(st.ShippingDate)
			}
		}
		for c, v := range values {
			f.SetCellValue(sheetName, cell(colName(c), row), v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail.Wrap(err)
	}

	filename := fmt.Sprintf("products_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ShippingICS 预计到货日历
// ═══════════════════════════════════════════════════════════
//
// 每个有 ETA 的产品生成一个全天事件：
//   - SUMMARY: 产品 (客户)
//   - DESCRIPTION: 按请求语言翻译的出货状态
//   - UID: 出货记录 ID，重复导入时日历客户端可去重

func (s *exportService) ShippingICS(ctx context.Context, lang i18n.Language) ([]byte, string, error) {
	products, err := s.repo.Product.List(ctx)
	if err != nil {
		s.logger.Error("查询产品失败", zap.Error(err))
		return nil, "", apperrors.ErrInternal.Wrap(err)
	}

	labels := s.localizer.ResolveMany(ctx, append([]string{"shipping_status"}, shippingStatusKeys()...), lang)
	stamp := s.now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Coilmaster Thailand//Transfer Tracker//EN")
	cal.SetXWRCalName(labels["shipping_status"])

	for i := range products {
		p := &products[i]
		st := p.ShippingStatus
		if st == nil || st.EtaDate == nil {
			continue
		}

		summary := p.Name
		if p.Customer != nil {
			summary = fmt.Sprintf("%s (%s)", p.Name, p.Customer.Name)
		}

		event := cal.AddEvent(st.ShippingID + "@transfer-tracker")
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(*st.EtaDate)
		event.SetAllDayEndAt(st.EtaDate.AddDate(0, 0, 1))
		event.SetSummary(summary)
		event.SetDescription(labels[st.Status])
	}

	filename := fmt.Sprintf("shipping_%s.ics", s.now().Format("20060102"))
	return []byte(cal.Serialize()), filename, nil
}

// ── 辅助函数 ──

func shippingStatusKeys() []string {
	return []string{model.ShippingPreparing, model.ShippingInTransit, model.ShippingArrived, model.ShippingDelayed}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
