package usecase

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/storefront-seeder/internal/domain"
	"github.com/DRSN-tech/storefront-seeder/pkg/e"
	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

// Шаги настройки магазина
const (
	StepPermalinks          = "permalinks"
	StepActivationRedirect  = "activation_redirect"
	StepSetupWizardRedirect = "setup_wizard_redirect"
	StepFlatRateShipping    = "flat_rate_shipping"
	StepCashOnDelivery      = "cash_on_delivery"
)

// BootstrapUseCase идемпотентно настраивает магазин: каждый шаг сначала проверяет текущее состояние.
type BootstrapUseCase struct {
	settingsRepo SettingsRepository
	shippingRepo ShippingRepository
	txRunner     TxRunner
	logger       logger.Logger
}

func NewBootstrapUC(settingsRepo SettingsRepository, shippingRepo ShippingRepository, txRunner TxRunner, logger logger.Logger) *BootstrapUseCase {
	return &BootstrapUseCase{
		settingsRepo: settingsRepo,
		shippingRepo: shippingRepo,
		txRunner:     txRunner,
		logger:       logger,
	}
}

type bootstrapStep struct {
	name  string
	apply func(ctx context.Context) (bool, error)
}

// Bootstrap выполняет все шаги по порядку и возвращает те, что изменили состояние.
func (b *BootstrapUseCase) Bootstrap(ctx context.Context) (*BootstrapRes, error) {
	const op = "BootstrapUseCase.Bootstrap"

	steps := []bootstrapStep{
		{StepPermalinks, b.ensurePermalinks},
		{StepActivationRedirect, b.clearActivationRedirect},
		{StepSetupWizardRedirect, b.preventSetupWizardRedirect},
		{StepFlatRateShipping, b.ensureFlatRateShipping},
		{StepCashOnDelivery, b.enableCashOnDelivery},
	}

	res := &BootstrapRes{Applied: make([]string, 0, len(steps))}
	for _, step := range steps {
		changed, err := step.apply(ctx)
		if err != nil {
			return nil, e.Wrap(fmt.Sprintf("%s: %s", op, step.name), err)
		}

		if changed {
			b.logger.Infof("store bootstrap step applied: %s", step.name)
			res.Applied = append(res.Applied, step.name)
		}
	}

	return res, nil
}

// ensurePermalinks включает ссылки вида /%postname%/.
func (b *BootstrapUseCase) ensurePermalinks(ctx context.Context) (bool, error) {
	var current string
	found, err := b.settingsRepo.Get(ctx, SettingPermalinkStructure, &current)
	if err != nil {
		return false, err
	}
	if found && current == PermalinkPostName {
		return false, nil
	}

	return true, b.settingsRepo.Set(ctx, SettingPermalinkStructure, PermalinkPostName)
}

// clearActivationRedirect удаляет отложенный редирект после активации.
func (b *BootstrapUseCase) clearActivationRedirect(ctx context.Context) (bool, error) {
	var ignored any
	found, err := b.settingsRepo.Get(ctx, SettingActivationRedirect, &ignored)
	if err != nil || !found {
		return false, err
	}

	return true, b.settingsRepo.Delete(ctx, SettingActivationRedirect)
}

func (b *BootstrapUseCase) preventSetupWizardRedirect(ctx context.Context) (bool, error) {
	var prevented bool
	found, err := b.settingsRepo.Get(ctx, SettingPreventWizardRedirect, &prevented)
	if err != nil {
		return false, err
	}
	if found && prevented {
		return false, nil
	}

	return true, b.settingsRepo.Set(ctx, SettingPreventWizardRedirect, true)
}

// ensureFlatRateShipping добавляет фиксированную ставку в зону «везде», если её там ещё нет.
func (b *BootstrapUseCase) ensureFlatRateShipping(ctx context.Context) (bool, error) {
	changed := false

	err := b.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		methods, err := b.shippingRepo.ListZoneMethods(ctx, domain.EverywhereZoneID)
		if err != nil {
			return err
		}

		for _, m := range methods {
			if m.MethodID == domain.MethodFlatRate {
				return nil
			}
		}

		method, err := b.shippingRepo.AddZoneMethod(ctx, domain.EverywhereZoneID, domain.MethodFlatRate)
		if err != nil {
			return err
		}

		key := fmt.Sprintf(settingFlatRateSettingsFormat, method.InstanceID)
		if err := b.settingsRepo.Set(ctx, key, domain.DefaultFlatRateSettings()); err != nil {
			return err
		}

		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return changed, nil
}

// enableCashOnDelivery включает оплату при получении, сохраняя остальные её настройки.
func (b *BootstrapUseCase) enableCashOnDelivery(ctx context.Context) (bool, error) {
	var settings map[string]any
	if _, err := b.settingsRepo.Get(ctx, SettingCashOnDelivery, &settings); err != nil {
		return false, err
	}

	if settings == nil {
		settings = make(map[string]any)
	}
	if enabled, _ := settings["enabled"].(string); enabled == "yes" {
		return false, nil
	}
	settings["enabled"] = "yes"

	return true, b.settingsRepo.Set(ctx, SettingCashOnDelivery, settings)
}
