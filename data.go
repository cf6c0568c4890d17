package main

import "fmt"

// Sample dashboard data. Every accessor builds a fresh value on each call,
// so callers may modify the result freely.

// getKPIData returns the headline KPIs
func getKPIData() (KPISummary, error) {
	kpis := KPISummary{
		TotalRevenue:   487650.00,
		TotalCustomers: 1234,
		TotalOrders:    3567,
		ActiveUsers:    892,
	}
	if err := validateRecord(kpis); err != nil {
		return KPISummary{}, fmt.Errorf("building kpis: %w", err)
	}
	return kpis, nil
}

// getMonthlySales returns sales for the last six months, oldest first
func getMonthlySales() ([]MonthlySales, error) {
	sales := []MonthlySales{
		{Month: "Mayo", Sales: 65000},
		{Month: "Junio", Sales: 72000},
		{Month: "Julio", Sales: 68500},
		{Month: "Agosto", Sales: 81200},
		{Month: "Septiembre", Sales: 75800},
		{Month: "Octubre", Sales: 89300},
	}
	if err := validateRecords(sales); err != nil {
		return nil, fmt.Errorf("building monthly sales: %w", err)
	}
	return sales, nil
}

// getCategoryData returns the sales distribution by product category
func getCategoryData() ([]CategoryData, error) {
	categories := []CategoryData{
		{Name: "Electronics", Value: 125000},
		{Name: "Clothing", Value: 98000},
		{Name: "Home & Garden", Value: 87500},
		{Name: "Sports", Value: 76000},
		{Name: "Books", Value: 45000},
	}
	if err := validateRecords(categories); err != nil {
		return nil, fmt.Errorf("building categories: %w", err)
	}
	return categories, nil
}

// getMonthlyRevenue returns revenue for the last six months, oldest first
func getMonthlyRevenue() ([]MonthlyRevenue, error) {
	revenue := []MonthlyRevenue{
		{Month: "Mayo", Revenue: 78000},
		{Month: "Junio", Revenue: 85000},
		{Month: "Julio", Revenue: 79500},
		{Month: "Agosto", Revenue: 92000},
		{Month: "Septiembre", Revenue: 87300},
		{Month: "Octubre", Revenue: 95800},
	}
	if err := validateRecords(revenue); err != nil {
		return nil, fmt.Errorf("building monthly revenue: %w", err)
	}
	return revenue, nil
}

// getOrders returns the most recent orders in insertion order
func getOrders() ([]Order, error) {
	orders := []Order{
		{ID: 1001, Customer: "Juan Pérez", Product: "Laptop HP", Quantity: 1, Total: 1299.99, Status: OrderStatusCompleted},
		{ID: 1002, Customer: "María García", Product: "iPhone 15", Quantity: 2, Total: 1998.00, Status: OrderStatusPending},
		{ID: 1003, Customer: "Carlos Rodríguez", Product: "Nike Air Max", Quantity: 1, Total: 159.99, Status: OrderStatusCompleted},
		{ID: 1004, Customer: "Ana Martínez", Product: `Samsung TV 55"`, Quantity: 1, Total: 799.99, Status: OrderStatusProcessing},
		{ID: 1005, Customer: "Luis Hernández", Product: "PlayStation 5", Quantity: 1, Total: 499.99, Status: OrderStatusCompleted},
		{ID: 1006, Customer: "Sofia López", Product: "iPad Pro", Quantity: 1, Total: 1099.00, Status: OrderStatusPending},
		{ID: 1007, Customer: "Diego Torres", Product: "MacBook Pro", Quantity: 1, Total: 2399.00, Status: OrderStatusCompleted},
		{ID: 1008, Customer: "Elena Ramírez", Product: "AirPods Pro", Quantity: 3, Total: 747.00, Status: OrderStatusProcessing},
	}
	if err := validateRecords(orders); err != nil {
		return nil, fmt.Errorf("building orders: %w", err)
	}
	return orders, nil
}
