package schema_registry

import "github.com/init-pkg/column-mapper/domain/app"

func field(target, category string, synonyms ...string) app.CanonicalField {
	return app.CanonicalField{TargetName: target, Synonyms: synonyms, Category: category}
}

func builtinCatalogues() []Catalogue {
	return []Catalogue{
		{Industry: app.IndustryRetail, Fields: []app.CanonicalField{
			field("order_id", "identifier", "order_id", "orderid", "order id", "id", "order_number"),
			field("order_Date", "temporal", "order_date", "orderdate", "date", "purchase_date", "buy_date"),
			field("ProductName", "product", "product_name", "productname", "product", "item", "item_name"),
			field("Category", "classification", "category", "product_category", "type", "product_type"),
			field("Quantity", "numeric", "quantity", "qty", "amount", "count"),
			field("UnitPrice", "financial", "unit_price", "unitprice", "price", "cost", "price_per_unit", "unit_cost"),
			field("TotalSales", "financial", "total_sales", "totalsales", "total", "total_amount"),
			field("customer_name", "customer", "customer_name", "customername", "client_name", "name"),
			field("customer_email", "customer", "customer_email", "customeremail", "email", "client_email"),
			field("Gender", "demographic", "gender", "sex", "customer_gender"),
			field("ServiceRating", "feedback", "service_rating", "servicerating", "rating", "satisfaction"),
		}},
		{Industry: app.IndustryRestaurants, Fields: []app.CanonicalField{
			field("Order ID", "identifier", "order_id", "orderid", "order id", "id"),
			field("Order Date", "temporal", "order_date", "orderdate", "date"),
			field("Food Name", "product", "food_name", "foodname", "dish", "item", "meal"),
			field("Food Type", "classification", "food_type", "foodtype", "category", "cuisine"),
			field("Price", "financial", "price", "cost", "amount"),
			field("Quantity", "numeric", "quantity", "qty", "count"),
			field("Size", "specification", "size", "portion", "serving"),
			field("Total Amount", "financial", "total_amount", "totalamount", "total", "bill"),
		}},
		{Industry: app.IndustryHotels, Fields: []app.CanonicalField{
			field("CheckOutDate", "temporal", "checkout_date", "checkoutdate", "checkout", "departure"),
			field("RoomType", "specification", "room_type", "roomtype", "room", "accommodation"),
			field("NightsStayed", "numeric", "nights_stayed", "nightsstayed", "nights", "duration"),
			field("BookingSource", "classification", "booking_source", "bookingsource", "source", "platform"),
			field("PricePerNight", "financial", "price_per_night", "pricepernight", "nightly_rate", "rate"),
			field("TotalPrice", "financial", "total_price", "totalprice", "total", "bill"),
			field("Status", "classification", "status", "booking_status", "reservation_status"),
			field("CustomerRating", "feedback", "customer_rating", "customerrating", "rating", "review"),
			field("GuestCount", "numeric", "guest_count", "guestcount", "guests", "occupancy"),
			field("PaymentMethod", "classification", "payment_method", "paymentmethod", "payment"),
			field("CancellationReason", "classification", "cancellation_reason", "cancellationreason", "cancel_reason"),
			field("TotalRooms", "numeric", "total_rooms", "totalrooms", "rooms"),
		}},
		{Industry: app.IndustryManufacturing, Fields: []app.CanonicalField{
			field("Production Date", "temporal", "production_date", "productiondate", "date", "manufacture_date"),
			field("Production Line Number", "identifier", "production_line", "productionline", "line", "line_number"),
			field("Product Name", "product", "product_name", "productname", "product", "item"),
			field("Production Quantity", "numeric", "production_quantity", "productionquantity", "quantity", "units"),
			field("Defective Units", "quality", "defective_units", "defectiveunits", "defects", "bad_units"),
			field("Operating Time (Hours)", "temporal", "operating_time", "operatingtime", "runtime", "hours"),
			field("Number of Stops", "numeric", "stops", "number_of_stops", "breakdowns"),
			field("Total Downtime (Minutes)", "temporal", "downtime", "total_downtime", "downtime_minutes"),
			field("Production Cost per Unit", "financial", "cost_per_unit", "costperunit", "unit_cost"),
			field("Raw Materials Used (kg)", "materials", "raw_materials", "rawmaterials", "materials"),
			field("Operator Name", "personnel", "operator_name", "operatorname", "operator", "worker"),
			field("Notes", "additional", "notes", "comments", "remarks"),
		}},
		{Industry: app.IndustryLogistics, Fields: []app.CanonicalField{
			field("Shipment ID", "identifier", "shipment_id", "shipmentid", "tracking", "tracking_id"),
			field("Order Date", "temporal", "order_date", "orderdate", "ship_date"),
			field("Delivery Date", "temporal", "delivery_date", "deliverydate", "delivered"),
			field("Expected Delivery Date", "temporal", "expected_delivery", "expecteddelivery", "eta"),
			field("Shipment Status", "classification", "shipment_status", "shipmentstatus", "status"),
			field("Vehicle ID", "identifier", "vehicle_id", "vehicleid", "truck", "vehicle"),
			field("Driver ID", "identifier", "driver_id", "driverid", "driver"),
			field("Vehicle Type", "classification", "vehicle_type", "vehicletype", "truck_type"),
			field("Fuel Consumption (L)", "resource", "fuel_consumption", "fuelconsumption", "fuel"),
			field("Total Distance (km)", "numeric", "distance", "total_distance", "km"),
			field("Breakdown Count", "numeric", "breakdown_count", "breakdowncount", "breakdowns"),
			field("Shipping Cost", "financial", "shipping_cost", "shippingcost", "transport_cost"),
			field("Fuel Cost", "financial", "fuel_cost", "fuelcost"),
			field("Total Operating Cost", "financial", "operating_cost", "operatingcost", "total_cost"),
			field("Revenue per Shipment", "financial", "revenue", "revenue_per_shipment"),
			field("Customer ID", "identifier", "customer_id", "customerid", "client_id"),
			field("Customer Location", "location", "customer_location", "customerlocation", "destination"),
			field("Delivery Time (Minutes)", "temporal", "delivery_time", "deliverytime", "time_taken"),
			field("Customer Rating", "feedback", "customer_rating", "customerrating", "rating"),
			field("Delay Reason", "classification", "delay_reason", "delayreason", "delay"),
			field("Delay Duration (Minutes)", "temporal", "delay_duration", "delayduration", "delay_minutes"),
			field("Number of Stops", "numeric", "stops", "number_of_stops"),
		}},
		{Industry: app.IndustryHR, Fields: []app.CanonicalField{
			field("Employee ID", "identifier", "employee_id", "employeeid", "emp_id", "id"),
			field("Name", "personal", "name", "employee_name", "full_name"),
			field("Department", "organizational", "department", "dept", "division"),
			field("Job Title", "organizational", "job_title", "jobtitle", "position", "role"),
			field("Hire Date", "temporal", "hire_date", "hiredate", "start_date", "joining_date"),
			field("Contract Type", "classification", "contract_type", "contracttype", "employment_type"),
			field("Monthly Salary", "financial", "monthly_salary", "monthlysalary", "salary", "wage"),
			field("Performance Rating", "evaluation", "performance_rating", "performancerating", "rating"),
			field("Absences (Days)", "attendance", "absences", "absence_days", "sick_days"),
			field("Training Hours", "development", "training_hours", "traininghours", "training"),
		}},
		{Industry: app.IndustryFinance, Fields: []app.CanonicalField{
			field("Transaction ID", "identifier", "transaction_id", "transactionid", "txn_id", "id"),
			field("Date", "temporal", "date", "transaction_date", "txn_date"),
			field("Category", "classification", "category", "type", "transaction_type"),
			field("Amount", "financial", "amount", "value", "sum"),
			field("Payment Method", "classification", "payment_method", "paymentmethod", "method"),
			field("Account Balance", "financial", "account_balance", "accountbalance", "balance"),
			field("Revenue", "financial", "revenue", "income", "earnings"),
			field("Expenses", "financial", "expenses", "costs", "expenditure"),
			field("Profit", "financial", "profit", "gain"),
			field("Tax Rate (%)", "financial", "tax_rate", "taxrate", "tax_percentage"),
			field("Tax Amount", "financial", "tax_amount", "taxamount", "tax"),
			field("Net Profit", "financial", "net_profit", "netprofit", "final_profit"),
			field("Department", "organizational", "department", "dept", "division"),
			field("Approval Status", "classification", "approval_status", "approvalstatus", "status"),
		}},
		{Industry: app.IndustryOperations, Fields: []app.CanonicalField{
			field("Project Name", "project", "project_name", "projectname", "project"),
			field("Task Name", "task", "task_name", "taskname", "task"),
			field("Assigned Employee", "personnel", "assigned_employee", "assignedemployee", "assignee"),
			field("Task Start Date", "temporal", "task_start_date", "taskstartdate", "start_date"),
			field("Task Due Date", "temporal", "task_due_date", "taskduedate", "due_date"),
			field("Task Status", "classification", "task_status", "taskstatus", "status"),
			field("Task Progress (%)", "progress", "task_progress", "taskprogress", "progress"),
			field("Task Priority", "classification", "task_priority", "taskpriority", "priority"),
			field("Work Hours Allocated", "resource", "hours_allocated", "hoursallocated", "planned_hours"),
			field("Work Hours Spent", "resource", "hours_spent", "hoursspent", "actual_hours"),
			field("Task Quality Score", "evaluation", "quality_score", "qualityscore", "quality"),
			field("Task Completion Satisfaction", "evaluation", "completion_satisfaction", "completionsatisfaction", "satisfaction"),
		}},
	}
}
