// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mirovsky/passvault/models"
)

var errUsage = errors.New("wrong arguments")

// fieldPrompt describes how one sensitive field is collected from the user
// when an item is created.
type fieldPrompt struct {
	field  string
	label  string
	typ    models.ItemType
	hidden bool
}

var fieldPrompts = []fieldPrompt{
	{field: models.FieldUsername, label: "username", typ: models.ItemTypeLogin},
	{field: models.FieldPassword, label: "password", typ: models.ItemTypeLogin, hidden: true},
	{field: models.FieldTOTPSeed, label: "totp seed", typ: models.ItemTypeTOTP, hidden: true},
	{field: models.FieldNote, label: "note", typ: models.ItemTypeNote},
}

func (a *App) cmdSetup(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: setup <login>", errUsage)
	}

	mnemonic, err := a.services.SetupService.Setup(ctx, args[0])

	// A non-empty mnemonic means the account exists server-side. Show it
	// regardless of err; it is the only copy there will ever be.
	if mnemonic != "" {
		fmt.Fprintln(a.out, "write down the recovery phrase below;")
		fmt.Fprintln(a.out, "it is shown exactly once and cannot be recovered later.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "  "+mnemonic)
		fmt.Fprintln(a.out)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "account created")
	return nil
}

func (a *App) cmdUnlock(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: unlock <login>", errUsage)
	}

	passphrase, err := a.readSecret("Recovery phrase: ")
	if err != nil {
		return err
	}

	if err := a.services.SetupService.Unlock(ctx, args[0], passphrase); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "unlocked")
	return nil
}

func (a *App) cmdCreateVault(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: create-vault <name> [org-id]", errUsage)
	}

	vaultType, orgID := models.VaultTypePersonal, ""
	if len(args) == 2 {
		vaultType, orgID = models.VaultTypeOrganization, args[1]
	}

	vault, err := a.services.VaultKeyService.CreateVault(ctx, args[0], vaultType, orgID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "vault created: %s (%s)\n", vault.VaultID, vault.Type)
	return nil
}

func (a *App) cmdAdd(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: add <vault-id> <name> <types>", errUsage)
	}
	vaultID, name := args[0], args[1]

	types, err := parseItemTypes(args[2])
	if err != nil {
		return err
	}

	meta := models.VaultItem{Name: name, Type: types}

	url, err := a.readLine("url (optional): ")
	if err != nil {
		return err
	}
	meta.URL = url

	fields := models.ItemFields{}
	for _, p := range fieldPrompts {
		if !meta.HasType(p.typ) {
			continue
		}
		var value string
		if p.hidden {
			value, err = a.readSecret(p.label + ": ")
		} else {
			value, err = a.readLine(p.label + ": ")
		}
		if err != nil {
			return err
		}
		if value != "" {
			fields[p.field] = value
		}
	}

	item, err := a.services.ItemService.Create(ctx, vaultID, meta, fields)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "item created: %s\n", item.ItemID)
	return nil
}

func (a *App) cmdList(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: list <vault-id>", errUsage)
	}

	items, err := a.services.ItemService.List(ctx, args[0])
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "vault is empty")
		return nil
	}

	fmt.Fprintf(a.out, "%-36s  %-24s  %-16s  %s\n", "ID", "NAME", "TYPES", "UPDATED")
	for _, item := range items {
		fmt.Fprintf(a.out, "%-36s  %-24s  %-16s  %s\n",
			item.ItemID, item.Name, joinItemTypes(item.Type),
			item.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) cmdShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show <item-id>", errUsage)
	}

	item, err := a.services.ItemService.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fields, fieldErrs, err := a.services.ItemService.Decrypt(ctx, item)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "name:    %s\n", item.Name)
	if item.URL != "" {
		fmt.Fprintf(a.out, "url:     %s\n", item.URL)
	}
	fmt.Fprintf(a.out, "types:   %s\n", joinItemTypes(item.Type))
	fmt.Fprintf(a.out, "version: %d\n", item.Version)

	for _, name := range models.FieldNames {
		if value, ok := fields[name]; ok {
			fmt.Fprintf(a.out, "%s: %s\n", name, value)
		}
	}
	for _, fe := range fieldErrs {
		fmt.Fprintf(a.out, "warning: field %q could not be decrypted\n", fe.Field)
	}
	return nil
}

func (a *App) cmdCopy(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: copy <item-id> <field>", errUsage)
	}
	itemID, field := args[0], args[1]

	if !knownField(field) {
		return fmt.Errorf("%w: unknown field %q, one of %s",
			errUsage, field, strings.Join(models.FieldNames, ", "))
	}

	item, err := a.services.ItemService.Get(ctx, itemID)
	if err != nil {
		return err
	}

	fields, fieldErrs, err := a.services.ItemService.Decrypt(ctx, item)
	if err != nil {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Field == field {
			return fe
		}
	}

	value, ok := fields[field]
	if !ok {
		return fmt.Errorf("item has no %q field", field)
	}

	return a.copyToClipboard(value)
}

func (a *App) cmdRotate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rotate <item-id>", errUsage)
	}

	item, err := a.services.ItemService.Get(ctx, args[0])
	if err != nil {
		return err
	}

	rotated, err := a.services.ItemService.RotateItemKey(ctx, item)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "item key rotated, version %d\n", rotated.Version)
	return nil
}

func (a *App) cmdShare(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: share <vault-id> <member-id>", errUsage)
	}

	if err := a.services.ShareService.ShareVault(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "vault shared")
	return nil
}

func (a *App) cmdRevoke(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: revoke <vault-id> <member-id>", errUsage)
	}

	if err := a.services.ShareService.RevokeAccess(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "access revoked")
	return nil
}

func parseItemTypes(list string) ([]models.ItemType, error) {
	var types []models.ItemType
	for _, raw := range strings.Split(list, ",") {
		switch t := models.ItemType(strings.TrimSpace(raw)); t {
		case models.ItemTypeLogin, models.ItemTypeNote, models.ItemTypeTOTP:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("%w: unknown item type %q", errUsage, raw)
		}
	}
	return types, nil
}

func joinItemTypes(types []models.ItemType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func knownField(field string) bool {
	for _, name := range models.FieldNames {
		if name == field {
			return true
		}
	}
	return false
}
