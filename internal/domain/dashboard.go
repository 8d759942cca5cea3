package domain

// DailySales — сумма продаж за календарный день (для линейного графика).
type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// ProductSales — сумма продаж по товару (для столбчатого графика).
type ProductSales struct {
	Name         string  `json:"name"`
	SalesProduct float64 `json:"sales_product"`
}

// DashboardReport — итоговый отчет дашборда: две серии агрегации,
// обе ограничены товарами и продажами владельца.
type DashboardReport struct {
	SalesData        []DailySales   `json:"sales_data"`
	SalesProductData []ProductSales `json:"salesproduct_data"`
}
