package notifications

import (
	"fmt"
	"strings"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
)

// formatItemsList renders line items the way they appear in every mail body.
func formatItemsList(items []order.Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s (%s) x%d - ₹%s",
			item.Product(), item.Flavor(), item.Quantity(), item.Price().String()))
	}
	return strings.Join(lines, "\n")
}

func formatOrderDate(aggregate *order.Order) string {
	return aggregate.OrderDate().Format("January 2, 2006 at 3:04 PM")
}

func orderReceivedSubject(aggregate *order.Order) string {
	return fmt.Sprintf("🍦 New Order Received - %s", aggregate.ID().String())
}

func orderReceivedBody(aggregate *order.Order) string {
	customer := aggregate.Customer()

	var alternatePhone string
	if customer.AlternatePhone() != "" {
		alternatePhone = fmt.Sprintf(
			"<p><strong>Alternate Phone:</strong> %s</p>", customer.AlternatePhone())
	}

	screenshotBlock := `<p style="color: #999;">No payment screenshot provided</p>`
	if aggregate.HasPaymentScreenshot() {
		screenshotBlock = `
			<div style="background: #fff; padding: 20px; border-radius: 10px; margin: 20px 0; border: 2px solid #4CAF50;">
				<h3 style="color: #333;">📎 Payment Screenshot</h3>
				<p style="color: #666; font-size: 14px;">Payment screenshot is attached as a PDF file. Please check the attachment to view the payment proof.</p>
			</div>`
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #ff6b9d;">🍦 New Order Received!</h2>

			<div style="background: #f8f9fa; padding: 20px; border-radius: 10px; margin: 20px 0;">
				<h3 style="color: #333;">Order Details</h3>
				<p><strong>Order ID:</strong> %s</p>
				<p><strong>Order Date:</strong> %s</p>
				<p><strong>Total Amount:</strong> ₹%s</p>
				<p><strong>Payment Status:</strong> %s</p>
			</div>

			<div style="background: #fff5f8; padding: 20px; border-radius: 10px; margin: 20px 0;">
				<h3 style="color: #333;">Customer Information</h3>
				<p><strong>Name:</strong> %s</p>
				<p><strong>Email:</strong> %s</p>
				<p><strong>Phone:</strong> %s</p>
				%s
				<p><strong>Delivery Address:</strong> %s</p>
				<p><strong>Pincode:</strong> %s</p>
			</div>

			<div style="background: #e8f5e9; padding: 20px; border-radius: 10px; margin: 20px 0;">
				<h3 style="color: #333;">Order Items</h3>
				<pre style="font-family: monospace; white-space: pre-wrap;">%s</pre>
			</div>

			%s

			<div style="margin-top: 30px; padding-top: 20px; border-top: 2px solid #ddd; color: #666; font-size: 12px;">
				<p>This is an automated email from Anand Ice Cream ordering system.</p>
			</div>
		</div>`,
		aggregate.ID().String(),
		formatOrderDate(aggregate),
		aggregate.TotalAmount().String(),
		aggregate.PaymentStatus().String(),
		customer.FullName(),
		customer.Email(),
		customer.Phone(),
		alternatePhone,
		customer.DeliveryAddress(),
		customer.Pincode(),
		formatItemsList(aggregate.Items()),
		screenshotBlock,
	)
}

func orderConfirmedSubject(aggregate *order.Order) string {
	return fmt.Sprintf("Order Confirmed - Anand Ice Cream (Order #%s)", aggregate.ID().String())
}

func orderConfirmedBody(aggregate *order.Order) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
				<h1 style="color: white; margin: 0;">🎉 Order Confirmed!</h1>
			</div>

			<div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px;">
				<p style="font-size: 16px; color: #333;">Dear %s,</p>

				<p style="font-size: 16px; color: #333; line-height: 1.6;">
					Great news! Your order has been <strong style="color: #00b894;">successfully confirmed</strong>.
				</p>

				<div style="background: white; padding: 20px; border-radius: 10px; margin: 20px 0; border-left: 4px solid #00b894;">
					<h3 style="color: #333; margin-top: 0;">Order Details</h3>
					<p><strong>Order ID:</strong> %s</p>
					<p><strong>Total Amount:</strong> ₹%s</p>
					<p><strong>Order Date:</strong> %s</p>
				</div>

				<div style="background: white; padding: 20px; border-radius: 10px; margin: 20px 0;">
					<h3 style="color: #333; margin-top: 0;">Order Items</h3>
					<pre style="font-family: monospace; white-space: pre-wrap; color: #666;">%s</pre>
				</div>

				<div style="background: #e8f5e9; padding: 20px; border-radius: 10px; margin: 20px 0; text-align: center;">
					<p style="font-size: 18px; color: #00b894; margin: 0;">
						🍦 Your delicious ice cream will be delivered soon!
					</p>
				</div>

				<p style="font-size: 14px; color: #666; margin-top: 30px;">
					Thank you for choosing Anand Ice Cream!
				</p>

				<p style="font-size: 14px; color: #666;">
					Best regards,<br>
					<strong>Anand Ice Cream Team</strong>
				</p>
			</div>

			<div style="margin-top: 20px; padding: 20px; text-align: center; color: #999; font-size: 12px;">
				<p>This is an automated email from Anand Ice Cream ordering system.</p>
			</div>
		</div>`,
		aggregate.Customer().FullName(),
		aggregate.ID().String(),
		aggregate.TotalAmount().String(),
		formatOrderDate(aggregate),
		formatItemsList(aggregate.Items()),
	)
}

func orderCancelledSubject(aggregate *order.Order) string {
	return fmt.Sprintf("Order Cancelled - Anand Ice Cream (Order #%s)", aggregate.ID().String())
}

func orderCancelledBody(aggregate *order.Order) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #ff6b9d 0%%, #e84393 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
				<h1 style="color: white; margin: 0;">Order Cancelled</h1>
			</div>

			<div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px;">
				<p style="font-size: 16px; color: #333;">Dear %s,</p>

				<p style="font-size: 16px; color: #333; line-height: 1.6;">
					We regret to inform you that your order has been <strong style="color: #e84393;">cancelled</strong>.
				</p>

				<div style="background: white; padding: 20px; border-radius: 10px; margin: 20px 0; border-left: 4px solid #e84393;">
					<h3 style="color: #333; margin-top: 0;">Order Details</h3>
					<p><strong>Order ID:</strong> %s</p>
					<p><strong>Total Amount:</strong> ₹%s</p>
					<p><strong>Order Date:</strong> %s</p>
				</div>

				<div style="background: #fff3cd; padding: 20px; border-radius: 10px; margin: 20px 0; border-left: 4px solid #ffc107;">
					<h3 style="color: #856404; margin-top: 0;">💰 Refund Information</h3>
					<p style="color: #856404; font-size: 15px; line-height: 1.6;">
						Your amount of <strong>₹%s</strong> will be refunded within <strong>3 working days</strong>.
					</p>
				</div>

				<p style="font-size: 14px; color: #666; margin-top: 30px;">
					We apologize for any inconvenience caused.
				</p>

				<p style="font-size: 14px; color: #666;">
					Best regards,<br>
					<strong>Anand Ice Cream Team</strong>
				</p>
			</div>

			<div style="margin-top: 20px; padding: 20px; text-align: center; color: #999; font-size: 12px;">
				<p>This is an automated email from Anand Ice Cream ordering system.</p>
			</div>
		</div>`,
		aggregate.Customer().FullName(),
		aggregate.ID().String(),
		aggregate.TotalAmount().String(),
		formatOrderDate(aggregate),
		aggregate.TotalAmount().String(),
	)
}

func orderDeliveredSubject(aggregate *order.Order) string {
	return fmt.Sprintf("Order Delivered - Anand Ice Cream (Order #%s)", aggregate.ID().String())
}

func orderDeliveredBody(aggregate *order.Order) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #00b894 0%%, #00cec9 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
				<h1 style="color: white; margin: 0;">📦 Order Delivered!</h1>
			</div>

			<div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px;">
				<p style="font-size: 16px; color: #333;">Dear %s,</p>

				<p style="font-size: 16px; color: #333; line-height: 1.6;">
					Your order has been <strong style="color: #00b894;">delivered</strong>. We hope you enjoy it!
				</p>

				<div style="background: white; padding: 20px; border-radius: 10px; margin: 20px 0; border-left: 4px solid #00b894;">
					<h3 style="color: #333; margin-top: 0;">Order Details</h3>
					<p><strong>Order ID:</strong> %s</p>
					<p><strong>Total Amount:</strong> ₹%s</p>
					<p><strong>Order Date:</strong> %s</p>
				</div>

				<div style="background: white; padding: 20px; border-radius: 10px; margin: 20px 0;">
					<h3 style="color: #333; margin-top: 0;">Order Items</h3>
					<pre style="font-family: monospace; white-space: pre-wrap; color: #666;">%s</pre>
				</div>

				<div style="background: #e8f5e9; padding: 20px; border-radius: 10px; margin: 20px 0;">
					<h3 style="color: #333; margin-top: 0;">🧾 Invoice</h3>
					<p style="color: #666; font-size: 14px;">Your invoice is attached as a PDF file for your records.</p>
				</div>

				<p style="font-size: 14px; color: #666; margin-top: 30px;">
					Thank you for choosing Anand Ice Cream!
				</p>

				<p style="font-size: 14px; color: #666;">
					Best regards,<br>
					<strong>Anand Ice Cream Team</strong>
				</p>
			</div>

			<div style="margin-top: 20px; padding: 20px; text-align: center; color: #999; font-size: 12px;">
				<p>This is an automated email from Anand Ice Cream ordering system.</p>
			</div>
		</div>`,
		aggregate.Customer().FullName(),
		aggregate.ID().String(),
		aggregate.TotalAmount().String(),
		formatOrderDate(aggregate),
		formatItemsList(aggregate.Items()),
	)
}
