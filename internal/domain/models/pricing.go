package models

import "time"

// Action is the pricing engine's terminal decision for one item.
type Action string

const (
	ActionSell   Action = "sell"
	ActionDonate Action = "donate"
	ActionDump   Action = "dump"
)

// ProduceContext holds simulated demand/stock figures for the produce engine.
type ProduceContext struct {
	DailySalesRate         int `json:"daily_sales_rate" bson:"daily_sales_rate"`
	StockLevel             int `json:"stock_level" bson:"stock_level"`
	EstimatedShelfLifeDays int `json:"estimated_shelf_life_days" bson:"estimated_shelf_life_days"`
}

// MilkContext holds simulated demand/stock figures for the dairy engine.
type MilkContext struct {
	Demand         string `json:"demand" bson:"demand"`
	DailySalesRate int    `json:"daily_sales_rate" bson:"daily_sales_rate"`
	StockLevel     int    `json:"stock_level" bson:"stock_level"`
}

// PricingDecision is the immutable outcome of a pricing engine run. The
// business context embedded here is the one the engine actually used.
type PricingDecision struct {
	Action          Action  `json:"action"`
	DiscountApplied bool    `json:"discount_applied"`
	DiscountPercent float64 `json:"discount_percent"`
	PriceUSD        float64 `json:"price_usd"`
	Message         string  `json:"message,omitempty"`
	BusinessContext any     `json:"business_context,omitempty"`
}

// DecisionRecord is the audit-log form of a pricing decision.
type DecisionRecord struct {
	ID              string    `bson:"_id" json:"id"`
	Source          string    `bson:"source" json:"source"`
	SKU             string    `bson:"sku,omitempty" json:"sku,omitempty"`
	Label           Label     `bson:"label" json:"label"`
	Confidence      float64   `bson:"confidence" json:"confidence"`
	Action          Action    `bson:"action" json:"action"`
	PriceUSD        float64   `bson:"price_usd" json:"price_usd"`
	DiscountPercent float64   `bson:"discount_percent" json:"discount_percent"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// Decision record sources.
const (
	DecisionSourceProduce = "produce"
	DecisionSourceDairy   = "dairy"
)
