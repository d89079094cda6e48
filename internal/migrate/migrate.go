package migrate

import (
	"context"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto
	CreateChecks           bool // CHECK-constraint для целостности
	CreateIndexes          bool // индексы и UNIQUE
	CreateFKsViaSQL        bool // FK через SQL (поверх GORM-constraint)
	CreateUpdatedAtTrigger bool // триггер обновления updated_at
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

// MigrateCafeDB создаёт схему кафе: таблицы, ограничения, каскады.
// Каскадные правила — бизнес-правила (удаление категории удаляет её продукты),
// поэтому FK создаются явно через SQL, а не только тегами GORM.
func MigrateCafeDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных кафе")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("Не удалось включить расширение pgcrypto", zap.Error(err))
			return err
		}
	}

	log.Info("Создание таблиц")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.UserAddress{},
		&models.Category{},
		&models.Topping{},
		&models.Product{},
		&models.ProductTopping{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemTopping{},
		&models.Payment{},
	); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}
	log.Info("Таблицы успешно созданы")

	if opt.CreateUpdatedAtTrigger {
		log.Info("Создание триггеров updated_at")
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;
`).Error; err != nil {
			log.Error("Не удалось создать функцию set_updated_at", zap.Error(err))
			return err
		}
		for _, table := range []string{"users", "user_addresses", "products", "orders", "payments"} {
			if err := db.WithContext(ctx).Exec(`
DROP TRIGGER IF EXISTS trg_` + table + `_updated ON ` + table + `;
CREATE TRIGGER trg_` + table + `_updated
BEFORE UPDATE ON ` + table + `
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
				log.Error("Не удалось создать триггер updated_at", zap.String("table", table), zap.Error(err))
				return err
			}
		}
	}

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")

		// Статусы и типы доставки (храним TEXT)
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','paid','preparing','delivering','completed','cancelled'));

ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_delivery_type_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_delivery_type_allowed
  CHECK (delivery_type IN ('delivery','pickup'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для статусов заказа", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE users
  DROP CONSTRAINT IF EXISTS chk_users_role_allowed;
ALTER TABLE users
  ADD CONSTRAINT chk_users_role_allowed
  CHECK (role IN ('customer','administrator'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для ролей", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
ALTER TABLE payments
  DROP CONSTRAINT IF EXISTS chk_payments_status_allowed;
ALTER TABLE payments
  ADD CONSTRAINT chk_payments_status_allowed
  CHECK (status IN ('pending','succeeded','failed'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для статусов платежа", zap.Error(err))
			return err
		}

		// Количество > 0, цены неотрицательные
		if err := db.WithContext(ctx).Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);

ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_price_non_negative;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_price_non_negative
  CHECK (price_cents >= 0);

ALTER TABLE order_item_toppings
  DROP CONSTRAINT IF EXISTS chk_order_item_toppings_price_non_negative;
ALTER TABLE order_item_toppings
  ADD CONSTRAINT chk_order_item_toppings_price_non_negative
  CHECK (price_cents >= 0);

ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_price_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_price_non_negative
  CHECK (price_cents >= 0);

ALTER TABLE toppings
  DROP CONSTRAINT IF EXISTS chk_toppings_price_non_negative;
ALTER TABLE toppings
  ADD CONSTRAINT chk_toppings_price_non_negative
  CHECK (price_cents >= 0);

ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_total_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_total_non_negative
  CHECK (total_cents >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для цен и количества", zap.Error(err))
			return err
		}

		log.Info("CHECK-ограничения успешно созданы")
	}

	if opt.CreateIndexes {
		log.Info("Создание индексов")

		// Уникальность email без учёта регистра
		if err := db.WithContext(ctx).Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email_lower
ON users (lower(email));
`).Error; err != nil {
			log.Error("Не удалось создать уникальный индекс ux_users_email_lower", zap.Error(err))
			return err
		}

		// Для выборок: заказы пользователя по дате
		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_user_created
ON orders (user_id, created_at DESC);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_orders_user_created", zap.Error(err))
			return err
		}

		if err := db.WithContext(ctx).Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_status_created
ON orders (status, created_at DESC);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_orders_status_created", zap.Error(err))
			return err
		}

		log.Info("Индексы успешно созданы")
	}

	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")

		fks := []struct {
			name string
			sql  string
		}{
			{"fk_user_addresses_user", `
ALTER TABLE user_addresses
  DROP CONSTRAINT IF EXISTS fk_user_addresses_user,
  ADD CONSTRAINT fk_user_addresses_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`},
			{"fk_categories_parent", `
ALTER TABLE categories
  DROP CONSTRAINT IF EXISTS fk_categories_parent,
  ADD CONSTRAINT fk_categories_parent
    FOREIGN KEY (parent_id) REFERENCES categories(id) ON DELETE CASCADE;`},
			{"fk_products_subcategory", `
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_subcategory,
  ADD CONSTRAINT fk_products_subcategory
    FOREIGN KEY (subcategory_id) REFERENCES categories(id) ON DELETE CASCADE;`},
			{"fk_product_toppings_product", `
ALTER TABLE product_toppings
  DROP CONSTRAINT IF EXISTS fk_product_toppings_product,
  ADD CONSTRAINT fk_product_toppings_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;`},
			{"fk_product_toppings_topping", `
ALTER TABLE product_toppings
  DROP CONSTRAINT IF EXISTS fk_product_toppings_topping,
  ADD CONSTRAINT fk_product_toppings_topping
    FOREIGN KEY (topping_id) REFERENCES toppings(id) ON DELETE CASCADE;`},
			{"fk_orders_user", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_user,
  ADD CONSTRAINT fk_orders_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`},
			{"fk_orders_address", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_address,
  ADD CONSTRAINT fk_orders_address
    FOREIGN KEY (address_id) REFERENCES user_addresses(id) ON DELETE SET NULL;`},
			{"fk_order_items_order", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`},
			{"fk_order_items_product", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_product,
  ADD CONSTRAINT fk_order_items_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;`},
			{"fk_order_item_toppings_item", `
ALTER TABLE order_item_toppings
  DROP CONSTRAINT IF EXISTS fk_order_item_toppings_item,
  ADD CONSTRAINT fk_order_item_toppings_item
    FOREIGN KEY (order_item_id) REFERENCES order_items(id) ON DELETE CASCADE;`},
			{"fk_order_item_toppings_topping", `
ALTER TABLE order_item_toppings
  DROP CONSTRAINT IF EXISTS fk_order_item_toppings_topping,
  ADD CONSTRAINT fk_order_item_toppings_topping
    FOREIGN KEY (topping_id) REFERENCES toppings(id) ON DELETE CASCADE;`},
			{"fk_payments_user", `
ALTER TABLE payments
  DROP CONSTRAINT IF EXISTS fk_payments_user,
  ADD CONSTRAINT fk_payments_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`},
			{"fk_payments_order", `
ALTER TABLE payments
  DROP CONSTRAINT IF EXISTS fk_payments_order,
  ADD CONSTRAINT fk_payments_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`},
		}

		for _, fk := range fks {
			if err := db.WithContext(ctx).Exec(fk.sql).Error; err != nil {
				log.Error("Не удалось создать внешний ключ", zap.String("fk", fk.name), zap.Error(err))
				return err
			}
		}

		log.Info("Внешние ключи успешно созданы")
	}

	log.Info("Миграция базы данных кафе успешно завершена")
	return nil
}
