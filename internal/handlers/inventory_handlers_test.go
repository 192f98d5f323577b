package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mstrelkov/jewelstock/internal/models"
)

func itemPayload() map[string]interface{} {
	return map[string]interface{}{
		"sku":          "GN001",
		"name":         "Gold necklace",
		"metal_type":   "gold",
		"weight_grams": 15.5,
		"cost_price":   95000,
		"description":  "22k chain",
	}
}

func TestCreateItem(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", itemPayload())
	setUserContext(c, manager)
	require.NoError(t, env.Inventory.CreateItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEqual(t, uuid.Nil, resp.ID)
	require.Equal(t, "GN001", resp.SKU)
	require.Equal(t, models.MetalGold, resp.MetalType)
	require.Equal(t, 15.5, resp.WeightGrams)
	require.Equal(t, manager.ID, resp.CreatedBy)

	topic, event := env.Publisher.last(t)
	require.Equal(t, "inventory_events", topic)
	require.Equal(t, "item_created", event["type"])
	require.Equal(t, "GN001", event["sku"])
}

func TestCreateItemDuplicateSKU(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", itemPayload())
	setUserContext(c, manager)
	require.NoError(t, env.Inventory.CreateItem(c))

	_, c2 := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", itemPayload())
	setUserContext(c2, manager)
	err := env.Inventory.CreateItem(c2)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateItemValidation(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	cases := map[string]func(map[string]interface{}){
		"missing_sku":     func(p map[string]interface{}) { p["sku"] = "" },
		"missing_name":    func(p map[string]interface{}) { p["name"] = "  " },
		"bad_metal":       func(p map[string]interface{}) { p["metal_type"] = "bronze" },
		"zero_weight":     func(p map[string]interface{}) { p["weight_grams"] = 0 },
		"negative_weight": func(p map[string]interface{}) { p["weight_grams"] = -2.5 },
		"zero_cost":       func(p map[string]interface{}) { p["cost_price"] = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			payload := itemPayload()
			mutate(payload)

			_, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", payload)
			setUserContext(c, manager)
			err := env.Inventory.CreateItem(c)

			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			require.Equal(t, http.StatusBadRequest, he.Code)
		})
	}

	var count int64
	require.NoError(t, env.DB.Model(&models.InventoryItem{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGetItems(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	for _, sku := range []string{"GN001", "SR002", "PT003"} {
		payload := itemPayload()
		payload["sku"] = sku
		_, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", payload)
		setUserContext(c, manager)
		require.NoError(t, env.Inventory.CreateItem(c))
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/inventory", nil)
	setUserContext(c, manager)
	require.NoError(t, env.Inventory.GetItems(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.InventoryItem `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	require.EqualValues(t, 3, resp.Meta.Total)
}

func TestGetItemByID(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", itemPayload())
	setUserContext(c, manager)
	require.NoError(t, env.Inventory.CreateItem(c))

	var created models.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec2, c2 := env.doJSONRequest(http.MethodGet, "/api/v1/inventory/"+created.ID.String(), nil)
	setUserContext(c2, manager)
	c2.SetParamNames("id")
	c2.SetParamValues(created.ID.String())
	require.NoError(t, env.Inventory.GetItem(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var fetched models.InventoryItem
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &fetched))
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, created.SKU, fetched.SKU)
}

func TestGetItemNotFound(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	_, c := env.doJSONRequest(http.MethodGet, "/api/v1/inventory/"+uuid.NewString(), nil)
	setUserContext(c, manager)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	err := env.Inventory.GetItem(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateItemPartial(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", itemPayload())
	setUserContext(c, manager)
	require.NoError(t, env.Inventory.CreateItem(c))

	var created models.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	patch := map[string]interface{}{"cost_price": 99000}
	rec2, c2 := env.doJSONRequest(http.MethodPut, "/api/v1/inventory/"+created.ID.String(), patch)
	setUserContext(c2, manager)
	c2.SetParamNames("id")
	c2.SetParamValues(created.ID.String())
	require.NoError(t, env.Inventory.UpdateItem(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var updated models.InventoryItem
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &updated))
	require.Equal(t, 99000.0, updated.CostPrice)
	// untouched fields keep their values
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.WeightGrams, updated.WeightGrams)
	require.Equal(t, created.SKU, updated.SKU)

	topic, event := env.Publisher.last(t)
	require.Equal(t, "inventory_events", topic)
	require.Equal(t, "item_updated", event["type"])
}

func TestUpdateItemInvalidInput(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", itemPayload())
	setUserContext(c, manager)
	require.NoError(t, env.Inventory.CreateItem(c))

	var created models.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	patch := map[string]interface{}{"weight_grams": -1}
	_, c2 := env.doJSONRequest(http.MethodPut, "/api/v1/inventory/"+created.ID.String(), patch)
	setUserContext(c2, manager)
	c2.SetParamNames("id")
	c2.SetParamValues(created.ID.String())
	err := env.Inventory.UpdateItem(c2)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeleteItem(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/inventory", itemPayload())
	setUserContext(c, manager)
	require.NoError(t, env.Inventory.CreateItem(c))

	var created models.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec2, c2 := env.doJSONRequest(http.MethodDelete, "/api/v1/inventory/"+created.ID.String(), nil)
	setUserContext(c2, manager)
	c2.SetParamNames("id")
	c2.SetParamValues(created.ID.String())
	require.NoError(t, env.Inventory.DeleteItem(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.InventoryItem{}).Count(&count).Error)
	require.Zero(t, count)

	topic, event := env.Publisher.last(t)
	require.Equal(t, "inventory_events", topic)
	require.Equal(t, "item_deleted", event["type"])
}

func TestDeleteItemNotFound(t *testing.T) {
	env := newTestEnv(t)
	manager := env.createUser(t, "manager", models.RoleManager)

	id := uuid.NewString()
	_, c := env.doJSONRequest(http.MethodDelete, "/api/v1/inventory/"+id, nil)
	setUserContext(c, manager)
	c.SetParamNames("id")
	c.SetParamValues(id)
	err := env.Inventory.DeleteItem(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}
