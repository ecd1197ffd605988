package analytics

import (
	"sort"

	"go.uber.org/zap"

	"farmchoice-admin/internal/models"
)

// StatusUnknown agrupa los pedidos sin estado
const StatusUnknown = "Unknown"

// DailyBucket acumula pedidos y ventas de un día calendario
type DailyBucket struct {
	Date   string  `json:"date"`
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales"`
}

// Summary es el resultado de la agregación para los gráficos
type Summary struct {
	DailyBuckets  []DailyBucket  `json:"daily"`
	StatusCounts  map[string]int `json:"statusCounts"`
	SkippedOrders int            `json:"skippedOrders"`
}

// Aggregate reduce la lista plana de pedidos a dos vistas derivadas:
// (a) serie por día calendario {fecha, pedidos, ventas}, ordenada
// ascendente por fecha; (b) conteo por estado.
//
// Un pedido sin fecha (CreatedAt cero) se excluye de la serie diaria,
// se cuenta en SkippedOrders y se registra en el log; nunca produce
// una clave de fecha inválida. El histograma de estados cuenta todos
// los pedidos, incluidos los excluidos de la serie.
func Aggregate(orders []models.Order, log *zap.Logger) Summary {
	daily := make(map[string]*DailyBucket)
	statusCounts := make(map[string]int)
	skipped := 0

	for _, order := range orders {
		status := order.Status
		if status == "" {
			status = StatusUnknown
		}
		statusCounts[status]++

		if order.CreatedAt.IsZero() {
			skipped++
			if log != nil {
				log.Warn("Order without creation timestamp skipped from daily series",
					zap.String("order_id", order.ID))
			}
			continue
		}

		date := order.CreatedAt.Format("2006-01-02")
		bucket, ok := daily[date]
		if !ok {
			bucket = &DailyBucket{Date: date}
			daily[date] = bucket
		}

		bucket.Orders++
		for _, item := range order.Items {
			if item.Variant == nil {
				continue
			}
			quantity := item.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			bucket.Sales += item.Variant.Price * float64(quantity)
		}
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	buckets := make([]DailyBucket, 0, len(dates))
	for _, date := range dates {
		buckets = append(buckets, *daily[date])
	}

	return Summary{
		DailyBuckets:  buckets,
		StatusCounts:  statusCounts,
		SkippedOrders: skipped,
	}
}
